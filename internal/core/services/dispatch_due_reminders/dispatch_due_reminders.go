package dispatchduereminders

import (
	"context"
	c "edumentor/internal/core/domain/common"
	e "edumentor/internal/core/domain/errors"
	"edumentor/internal/core/domain/logging"
	"edumentor/internal/core/domain/reminder"
	"edumentor/internal/core/services"
	"time"
)

type Input struct{}

type Result struct {
	Matched   int
	Delivered int
	Failed    int
}

// service performs one dispatcher tick: it snapshots pending entries,
// delivers the ones whose trigger time equals the current minute and
// records the outcome per the configured delivery policy.
type service struct {
	log             logging.Logger
	entryRepository reminder.EntryRepository
	gateway         reminder.NotificationGateway
	publishers      []reminder.AttemptPublisher
	policy          reminder.DeliveryPolicy
	sendTimeout     time.Duration
	now             func() time.Time
}

func New(
	log logging.Logger,
	entryRepository reminder.EntryRepository,
	gateway reminder.NotificationGateway,
	publishers []reminder.AttemptPublisher,
	policy reminder.DeliveryPolicy,
	sendTimeout time.Duration,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if entryRepository == nil {
		panic(e.NewNilArgumentError("entryRepository"))
	}
	if gateway == nil {
		panic(e.NewNilArgumentError("gateway"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:             log,
		entryRepository: entryRepository,
		gateway:         gateway,
		publishers:      publishers,
		policy:          policy,
		sendTimeout:     sendTimeout,
		now:             now,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	now := s.now()
	currentMinute := reminder.TimeOfDayFrom(now)

	entries, err := s.entryRepository.ListPending(ctx)
	if err != nil {
		logging.Error(ctx, s.log, err)
		return result, err
	}

	for _, entry := range entries {
		if entry.At != currentMinute {
			continue
		}
		result.Matched++

		sendErr := s.deliver(ctx, entry)
		if sendErr == nil {
			result.Delivered++
		} else {
			result.Failed++
		}
		s.recordOutcome(ctx, entry, now, sendErr)
		s.publishAttempt(ctx, entry, now, sendErr)
	}

	if result.Matched > 0 {
		s.log.Info(
			ctx,
			"Dispatcher tick finished.",
			logging.Entry("minute", currentMinute.String()),
			logging.Entry("matched", result.Matched),
			logging.Entry("delivered", result.Delivered),
			logging.Entry("failed", result.Failed),
		)
	}
	return result, nil
}

func (s *service) deliver(ctx context.Context, entry reminder.Entry) error {
	body := entry.Message
	if body == "" {
		body = reminder.DefaultMessage
	}
	// A hanging mail transport must not stall the whole tick.
	sendCtx, cancel := context.WithTimeout(ctx, s.sendTimeout)
	defer cancel()
	return s.gateway.SendEmail(sendCtx, entry.OwnerEmail, reminder.Subject, body)
}

func (s *service) recordOutcome(ctx context.Context, entry reminder.Entry, now time.Time, sendErr error) {
	var markErr error
	switch {
	case sendErr == nil:
		_, markErr = s.entryRepository.MarkDelivered(ctx, reminder.MarkDeliveredInput{
			ID: entry.ID,
			At: now,
		})
	case s.policy == reminder.PolicyRetry:
		_, markErr = s.entryRepository.MarkFailed(ctx, entry.ID, sendErr.Error())
	default:
		// Single-attempt policy: the entry is consumed even though the
		// send failed, so it cannot fire again within the same minute.
		_, markErr = s.entryRepository.MarkDelivered(ctx, reminder.MarkDeliveredInput{
			ID:    entry.ID,
			At:    now,
			Error: c.NewOptional(sendErr.Error(), true),
		})
	}

	if sendErr != nil {
		s.log.Warning(
			ctx,
			"Reminder delivery failed.",
			logging.Entry("entryID", entry.ID),
			logging.Entry("owner", entry.OwnerEmail),
			logging.Entry("err", sendErr),
		)
	}
	if markErr != nil {
		logging.Error(ctx, s.log, markErr, logging.Entry("entryID", entry.ID))
	}
}

func (s *service) publishAttempt(ctx context.Context, entry reminder.Entry, now time.Time, sendErr error) {
	event := reminder.AttemptEvent{
		EntryID:    entry.ID,
		OwnerEmail: entry.OwnerEmail,
		Message:    entry.Message,
		Delivered:  sendErr == nil,
		At:         now,
	}
	if sendErr != nil {
		event.Error = sendErr.Error()
	}
	for _, publisher := range s.publishers {
		if err := publisher.PublishAttempt(ctx, event); err != nil {
			s.log.Warning(
				ctx,
				"Could not publish delivery attempt event.",
				logging.Entry("entryID", entry.ID),
				logging.Entry("err", err),
			)
		}
	}
}
