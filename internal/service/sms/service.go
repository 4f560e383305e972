// Package sms sends text alerts through the PhilSMS gateway.
package sms

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"

	"alerto-backend/internal/config"
)

var ErrSendFailed = errors.New("sms dispatch failed")

type Service interface {
	Send(ctx context.Context, recipient, message string) error
}

type service struct {
	client   *resty.Client
	senderID string
}

func NewService(cfg *config.Config) Service {
	client := resty.New().
		SetBaseURL(cfg.PhilSMSBaseURL).
		SetAuthToken(cfg.PhilSMSAPIToken).
		SetHeader("Accept", "application/json").
		SetTimeout(cfg.SMSTimeout)

	return &service{
		client:   client,
		senderID: cfg.PhilSMSSenderID,
	}
}

type sendRequest struct {
	Recipient string `json:"recipient"`
	SenderID  string `json:"sender_id"`
	Type      string `json:"type"`
	Message   string `json:"message"`
}

type sendResponse struct {
	Status  string `json:"status"`
	Message any    `json:"message"`
}

func (s *service) Send(ctx context.Context, recipient, message string) error {
	var result sendResponse

	// The gateway expects the recipient without a leading +.
	resp, err := s.client.R().
		SetContext(ctx).
		SetBody(sendRequest{
			Recipient: strings.TrimPrefix(recipient, "+"),
			SenderID:  s.senderID,
			Type:      "plain",
			Message:   message,
		}).
		SetResult(&result).
		Post("/sms/send")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSendFailed, err)
	}

	if resp.IsError() || result.Status != "success" {
		return fmt.Errorf("%w: gateway returned %s", ErrSendFailed, resp.Status())
	}

	return nil
}
