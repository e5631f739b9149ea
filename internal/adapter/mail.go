// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-key-vault/internal/config"
	"github.com/MKhiriev/go-key-vault/internal/logger"
	"github.com/MKhiriev/go-key-vault/internal/service"
	"github.com/MKhiriev/go-key-vault/internal/utils"
	"github.com/MKhiriev/go-key-vault/models"
)

// mailBatch is the wire format of one relay submission.
type mailBatch struct {
	From     string               `json:"from"`
	Messages []models.MailMessage `json:"messages"`
}

type mailRelay struct {
	client *utils.HTTPClient

	from    string
	signKey string

	logger *logger.Logger
}

// NewMailRelay builds the [service.MailSender] client for the outbound mail
// relay. When mailCfg.RelayURL is empty, mail distribution is disabled and
// a nil sender is returned; callers treat nil as "log only".
func NewMailRelay(mailCfg config.Mail, logger *logger.Logger) (service.MailSender, error) {
	if mailCfg.RelayURL == "" {
		return nil, nil
	}

	baseURL, err := normalizeBaseURL(mailCfg.RelayURL)
	if err != nil {
		return nil, fmt.Errorf("invalid mail relay address: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(mailCfg.Timeout)

	return &mailRelay{
		client:  client,
		from:    mailCfg.From,
		signKey: mailCfg.SignKey,
		logger:  logger,
	}, nil
}

// SendBatch implements [service.MailSender]. It POSTs the batch to
// POST /api/mail/batch on the relay. When a sign key is configured the
// request carries an X-Signature header: a hex HMAC-SHA256 over the JSON
// body, letting the relay reject forged submissions.
func (m *mailRelay) SendBatch(ctx context.Context, messages []models.MailMessage) error {
	if len(messages) == 0 {
		return nil
	}

	batch := mailBatch{From: m.from, Messages: messages}
	body, err := json.Marshal(batch)
	if err != nil {
		return fmt.Errorf("encode mail batch: %w", err)
	}

	req := m.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body)

	if m.signKey != "" {
		req.SetHeader("X-Signature", utils.HashString(string(body), m.signKey))
	}

	resp, err := req.Post("/api/mail/batch")
	if err != nil {
		return fmt.Errorf("mail relay request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return fmt.Errorf("mail relay rejected batch: %w", err)
	}

	m.logger.Debug().
		Str("func", "SendBatch").
		Int("messages", len(messages)).
		Msg("mail batch accepted by relay")

	return nil
}
