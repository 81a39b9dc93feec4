package service

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"mergington.dev/backend/internal/model"
	"mergington.dev/backend/internal/pkg/apperr"
	"mergington.dev/backend/internal/pkg/observability"
	"mergington.dev/backend/internal/repo"
)

const (
	operationSignUp     = "signup"
	operationUnregister = "unregister"
)

type Signup struct {
	DB                      *bun.DB
	ActivityRepo            *repo.Activity
	ParticipantRepo         *repo.Participant
	ActivityParticipantRepo *repo.ActivityParticipant
}

func NewSignup(db *bun.DB, activityRepo *repo.Activity, participantRepo *repo.Participant, activityParticipantRepo *repo.ActivityParticipant) *Signup {
	return &Signup{
		DB:                      db,
		ActivityRepo:            activityRepo,
		ParticipantRepo:         participantRepo,
		ActivityParticipantRepo: activityParticipantRepo,
	}
}

// SignUp links the student identified by email to the activity named activityName.
// The participant is created on first signup. Capacity is checked and the link is
// written in the same transaction, under a lock on the activity row.
func (s *Signup) SignUp(ctx context.Context, activityName, email string) (*model.MessageResponse, error) {
	ctx, span := tracer.Start(ctx, "service.Signup.SignUp")
	defer span.End()
	span.SetAttributes(attribute.String("activity.name", activityName))

	defer observeDuration(operationSignUp, time.Now())

	err := s.DB.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		activity, err := s.ActivityRepo.GetActivityByNameForUpdate(ctx, tx, activityName)
		if errors.Is(err, apperr.ErrNotFound) {
			return apperr.ErrActivityNotFound
		} else if err != nil {
			return errors.Wrap(err, "failed to get activity")
		}

		links, err := s.ActivityParticipantRepo.GetLinksByActivity(ctx, tx, activity.ID)
		if err != nil {
			return errors.Wrap(err, "failed to get activity participants")
		}

		if lo.ContainsBy(links, func(link *model.ActivityParticipantEmail) bool {
			return link.Email == email
		}) {
			return apperr.ErrAlreadyRegistered
		}

		if !activity.HasCapacityFor(len(links)) {
			return apperr.ErrActivityFull
		}

		participant, created, err := s.ParticipantRepo.GetOrCreateParticipantByEmail(ctx, tx, email)
		if err != nil {
			return errors.Wrap(err, "failed to get or create participant")
		}
		if created {
			log.Ctx(ctx).Debug().
				Str("evt.name", "signup.participant.created").
				Int("participantId", participant.ID).
				Msg("created participant on first signup")
		}

		if !activity.MaxParticipants.Valid {
			if err := s.ActivityParticipantRepo.CreateLink(ctx, tx, activity.ID, participant.ID); err != nil {
				return errors.Wrap(err, "failed to create activity participant")
			}
			return nil
		}

		inserted, err := s.ActivityParticipantRepo.CreateLinkWithinCapacity(ctx, tx, activity.ID, participant.ID, activity.MaxParticipants.Int64)
		if err != nil {
			return errors.Wrap(err, "failed to create activity participant")
		}
		if !inserted {
			return apperr.ErrActivityFull
		}
		return nil
	})
	if err != nil {
		return nil, s.fail(ctx, span, operationSignUp, activityName, err)
	}

	observability.SignupTotal.WithLabelValues(operationSignUp, "ok").Inc()
	log.Ctx(ctx).Info().
		Str("evt.name", "signup.created").
		Str("activity", activityName).
		Msg("student signed up")

	return &model.MessageResponse{
		Message: fmt.Sprintf("Signed up %s for %s", email, activityName),
	}, nil
}

// Unregister removes the link between the activity and the student. Neither the
// participant nor the activity row is ever deleted.
func (s *Signup) Unregister(ctx context.Context, activityName, email string) (*model.MessageResponse, error) {
	ctx, span := tracer.Start(ctx, "service.Signup.Unregister")
	defer span.End()
	span.SetAttributes(attribute.String("activity.name", activityName))

	defer observeDuration(operationUnregister, time.Now())

	err := s.DB.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		activity, err := s.ActivityRepo.GetActivityByName(ctx, tx, activityName)
		if errors.Is(err, apperr.ErrNotFound) {
			return apperr.ErrActivityNotFound
		} else if err != nil {
			return errors.Wrap(err, "failed to get activity")
		}

		participant, err := s.ParticipantRepo.GetParticipantByEmail(ctx, tx, email)
		if errors.Is(err, apperr.ErrNotFound) {
			return apperr.ErrNotRegistered
		} else if err != nil {
			return errors.Wrap(err, "failed to get participant")
		}

		deleted, err := s.ActivityParticipantRepo.DeleteLink(ctx, tx, activity.ID, participant.ID)
		if err != nil {
			return errors.Wrap(err, "failed to delete activity participant")
		}
		if !deleted {
			return apperr.ErrNotRegistered
		}
		return nil
	})
	if err != nil {
		return nil, s.fail(ctx, span, operationUnregister, activityName, err)
	}

	observability.SignupTotal.WithLabelValues(operationUnregister, "ok").Inc()
	log.Ctx(ctx).Info().
		Str("evt.name", "signup.deleted").
		Str("activity", activityName).
		Msg("student unregistered")

	return &model.MessageResponse{
		Message: fmt.Sprintf("Unregistered %s from %s", email, activityName),
	}, nil
}

// fail records a failed operation. Domain errors are counted under their code and
// returned as is; anything else is an infrastructure failure.
func (s *Signup) fail(ctx context.Context, span trace.Span, operation, activityName string, err error) error {
	var appErr *apperr.AppError
	if errors.As(err, &appErr) {
		observability.SignupTotal.WithLabelValues(operation, appErr.ErrorCode).Inc()
		log.Ctx(ctx).Debug().
			Str("evt.name", "signup.rejected").
			Str("operation", operation).
			Str("activity", activityName).
			Str("code", appErr.ErrorCode).
			Msg("request rejected")
		return err
	}

	observability.SignupTotal.WithLabelValues(operation, "error").Inc()
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return errors.Wrapf(err, "service: %s", operation)
}

func observeDuration(operation string, start time.Time) {
	observability.SignupDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}
