// Package notify delivers push notifications to user devices.
package notify

import (
	"context"
	"fmt"

	fcm "google.golang.org/api/fcm/v1"
	"google.golang.org/api/option"

	"wisenkap/internal/logger"
)

// Message is a push notification addressed to one device.
type Message struct {
	Token string
	Title string
	Body  string
}

// Sender delivers a single push notification.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// LogSender logs messages instead of delivering them. It is used when no
// push provider is configured.
type LogSender struct{}

// Send implements Sender.
func (LogSender) Send(_ context.Context, msg Message) error {
	logger.Get().Infow("push notification (not delivered, no provider configured)",
		"title", msg.Title,
		"body", msg.Body,
	)
	return nil
}

// FCMSender delivers messages through the Firebase Cloud Messaging HTTP v1 API.
type FCMSender struct {
	service *fcm.Service
	parent  string
}

// NewFCMSender creates an FCM client for the given Firebase project. The
// credentials file is a service-account key; when empty, application default
// credentials are used.
func NewFCMSender(ctx context.Context, projectID, credentialsFile string) (*FCMSender, error) {
	if projectID == "" {
		return nil, fmt.Errorf("fcm: project ID is required")
	}

	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	svc, err := fcm.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("fcm: create service: %w", err)
	}
	return &FCMSender{service: svc, parent: "projects/" + projectID}, nil
}

// Send implements Sender.
func (s *FCMSender) Send(ctx context.Context, msg Message) error {
	req := &fcm.SendMessageRequest{
		Message: &fcm.Message{
			Token: msg.Token,
			Notification: &fcm.Notification{
				Title: msg.Title,
				Body:  msg.Body,
			},
		},
	}

	resp, err := s.service.Projects.Messages.Send(s.parent, req).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("fcm: send: %w", err)
	}
	logger.Get().Debugw("push notification sent", "name", resp.Name)
	return nil
}
