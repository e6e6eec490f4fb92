package email

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"github.com/resend/resend-go/v3"

	"kenshi-webspace/internal/config"
)

type Service interface {
	SendPostRemovedEmail(ctx context.Context, toEmail, authorName, postTitle string) error
}

type service struct {
	client *resend.Client
	config *config.Config
}

func NewService(cfg *config.Config) Service {
	return &service{
		client: resend.NewClient(cfg.ResendAPIKey),
		config: cfg,
	}
}

var postRemovedTmpl = template.Must(template.New("post_removed").Parse(`
<p>Hi {{.Name}},</p>
<p>Your article <strong>{{.Title}}</strong> was removed by a moderator for
violating the Kenshi Webspace content guidelines.</p>
<p>If you believe this was a mistake, reply to this email and we will take
another look.</p>
<p><a href="https://{{.Domain}}/guidelines">Content guidelines</a></p>
`))

func (s *service) SendPostRemovedEmail(ctx context.Context, toEmail, authorName, postTitle string) error {
	data := struct {
		Name   string
		Title  string
		Domain string
	}{
		Name:   authorName,
		Title:  postTitle,
		Domain: s.config.Domain,
	}

	var body bytes.Buffer
	if err := postRemovedTmpl.Execute(&body, data); err != nil {
		return fmt.Errorf("failed to execute email template: %w", err)
	}

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("Kenshi Webspace <%s>", s.config.FromEmail),
		To:      []string{toEmail},
		Html:    body.String(),
		Subject: "Your article was removed",
	}

	_, err := s.client.Emails.Send(params)
	return err
}
