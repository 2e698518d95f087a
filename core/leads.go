package core

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	maxLeadNameLen    = 100
	maxLeadEmailLen   = 254
	maxLeadMessageLen = 5000

	// LeadTimestampLayout is the ISO-8601 layout used when a lead is written
	// to a sink as text.
	LeadTimestampLayout = "2006-01-02T15:04:05.000Z07:00"
)

// LeadSubmission is what a visitor sends through the contact form.
type LeadSubmission struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Lead is an accepted submission. It is never modified after being appended.
type Lead struct {
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Message     string    `json:"message"`
	SubmittedAt time.Time `json:"submittedAt"`
}

// Timestamp returns [Lead.SubmittedAt] in UTC using [LeadTimestampLayout].
func (l *Lead) Timestamp() string {
	return l.SubmittedAt.UTC().Format(LeadTimestampLayout)
}

// Record returns the lead as an ordered list of fields, matching [LeadHeader].
func (l *Lead) Record() []string {
	return []string{l.Name, l.Email, l.Message, l.Timestamp()}
}

// LeadHeader names the fields returned by [Lead.Record].
var LeadHeader = []string{"name", "email", "message", "submittedAt"}

// LeadSink durably appends leads somewhere.
type LeadSink interface {
	AppendLead(ctx context.Context, lead *Lead) error
}

type LeadIntake struct {
	sink     LeadSink
	notifier Notifier
	now      func() time.Time
}

func NewLeadIntake(sink LeadSink, notifier Notifier) *LeadIntake {
	return &LeadIntake{
		sink:     sink,
		notifier: notifier,
		now:      time.Now,
	}
}

// Submit validates the submission and appends it to the sink exactly once.
// Validation failures wrap [ErrInvalidLead] and never reach the sink. Sink
// failures wrap [ErrLeadPersistence].
func (li *LeadIntake) Submit(ctx context.Context, sub *LeadSubmission) (*Lead, error) {
	lead := &Lead{
		Name:    strings.TrimSpace(sub.Name),
		Email:   strings.TrimSpace(sub.Email),
		Message: strings.TrimSpace(sub.Message),
	}

	if err := validateLead(lead); err != nil {
		return nil, err
	}

	lead.SubmittedAt = li.now().UTC()

	if err := li.sink.AppendLead(ctx, lead); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLeadPersistence, err)
	}

	if li.notifier != nil {
		li.notifier.Info(leadNotification(lead))
	}

	return lead, nil
}

const leadNotificationExcerpt = 200

// leadNotification is the message sent to the owner for a new lead. Fields
// are passed through as typed: notifiers deliver plain text.
func leadNotification(l *Lead) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "📬 New lead from %s <%s>", l.Name, l.Email)
	if l.Message != "" {
		sb.WriteString("\n\n")
		sb.WriteString(truncateStringWithEllipsis(l.Message, leadNotificationExcerpt))
	}
	return sb.String()
}

func validateLead(l *Lead) error {
	if l.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidLead)
	}
	if l.Email == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidLead)
	}
	if utf8.RuneCountInString(l.Name) > maxLeadNameLen {
		return fmt.Errorf("%w: name is too long (max %d characters)", ErrInvalidLead, maxLeadNameLen)
	}
	if utf8.RuneCountInString(l.Email) > maxLeadEmailLen {
		return fmt.Errorf("%w: email is too long (max %d characters)", ErrInvalidLead, maxLeadEmailLen)
	}
	if utf8.RuneCountInString(l.Message) > maxLeadMessageLen {
		return fmt.Errorf("%w: message is too long (max %d characters)", ErrInvalidLead, maxLeadMessageLen)
	}
	return nil
}
