// Package service implements the profile record operations. A profile can
// only be created for an account that already has a user record.
package service

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks UserDirectory,EventPublisher

import (
	"context"
	"errors"
	"time"

	"recordkeeper/internal/events"
	"recordkeeper/internal/platform/metrics"
	"recordkeeper/internal/platform/tracer"
	"recordkeeper/internal/platform/txn"
	"recordkeeper/internal/profile/models"
	"recordkeeper/internal/records"
	id "recordkeeper/pkg/domain"
	dErrors "recordkeeper/pkg/domain-errors"
)

// Store is the profile record store. *records.Store[id.AccountID, models.Record]
// satisfies it.
type Store interface {
	Create(ctx context.Context, acct id.AccountID, rec models.Record) error
	Read(ctx context.Context, acct id.AccountID) (models.Record, error)
	Exists(ctx context.Context, acct id.AccountID) (bool, error)
	Merge(ctx context.Context, acct id.AccountID, patch records.Patch[models.Record]) error
	Remove(ctx context.Context, acct id.AccountID) error
}

// UserDirectory answers whether an account has a user record. The user
// service satisfies it.
type UserDirectory interface {
	UserExists(ctx context.Context, acct id.AccountID) (bool, error)
}

type EventPublisher interface {
	Emit(ctx context.Context, event events.Event) error
}

// Service orchestrates profile record lifecycle.
type Service struct {
	store   Store
	users   UserDirectory
	tx      txn.Serializer
	emitter *events.Emitter
	metrics *metrics.Metrics
	tracer  tracer.Tracer
}

func New(store Store, users UserDirectory, opts ...Option) *Service {
	cfg := &serviceConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.tx == nil {
		cfg.tx = txn.NewMutex()
	}
	if cfg.tracer == nil {
		cfg.tracer = tracer.NewNoop()
	}
	return &Service{
		store:   store,
		users:   users,
		tx:      cfg.tx,
		emitter: events.NewEmitter(models.Schema, cfg.logger, cfg.publisher),
		metrics: cfg.metrics,
		tracer:  cfg.tracer,
	}
}

// Create checks, in order: the user record exists, no profile exists yet,
// every field encodes and the birth date is well formed. Only then is the
// profile inserted.
func (s *Service) Create(ctx context.Context, acct id.AccountID, cmd models.CreateCommand) (err error) {
	ctx, done := s.begin(ctx, "create", acct)
	defer func() { done(err) }()

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		registered, err := s.users.UserExists(txCtx, acct)
		if err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to check user record")
		}
		if !registered {
			return dErrors.New(dErrors.CodePrerequisiteMissing, "a user record is required before creating a profile")
		}

		present, err := s.store.Exists(txCtx, acct)
		if err != nil {
			return translate(err, "failed to create profile")
		}
		if present {
			return translate(records.ErrDuplicateRecord, "failed to create profile")
		}

		rec, err := models.NewRecord(cmd)
		if err != nil {
			return err
		}
		if err := s.store.Create(txCtx, acct, rec); err != nil {
			return translate(err, "failed to create profile")
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.metrics.IncrementRecords()
	s.emitter.Emit(ctx, events.KindCreated, acct, nil)
	return nil
}

// Update merges the supplied fields into the existing profile, all or none.
// The user record is not consulted.
func (s *Service) Update(ctx context.Context, acct id.AccountID, update models.Update) (err error) {
	ctx, done := s.begin(ctx, "update", acct, tracer.Attribute{Key: tracer.AttrFields, Value: update.Fields()})
	defer func() { done(err) }()

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.store.Merge(txCtx, acct, update); err != nil {
			return translate(err, "failed to update profile")
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.emitter.Emit(ctx, events.KindUpdated, acct, nil)
	return nil
}

func (s *Service) Remove(ctx context.Context, acct id.AccountID) (err error) {
	ctx, done := s.begin(ctx, "remove", acct)
	defer func() { done(err) }()

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.store.Remove(txCtx, acct); err != nil {
			return translate(err, "failed to remove profile")
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.metrics.DecrementRecords()
	s.emitter.Emit(ctx, events.KindRemoved, acct, nil)
	return nil
}

// Fetch returns the projection of the profile and emits it as a fetched
// event.
func (s *Service) Fetch(ctx context.Context, acct id.AccountID) (view *models.View, err error) {
	ctx, done := s.begin(ctx, "fetch", acct)
	defer func() { done(err) }()

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		rec, err := s.store.Read(txCtx, acct)
		if err != nil {
			return translate(err, "failed to fetch profile")
		}
		v := models.ToView(rec)
		view = &v
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.emitter.Emit(ctx, events.KindFetched, acct, *view)
	return view, nil
}

func (s *Service) begin(ctx context.Context, op string, acct id.AccountID, attrs ...tracer.Attribute) (context.Context, func(error)) {
	start := time.Now()
	attrs = append(attrs,
		tracer.String(tracer.AttrSchema, models.Schema),
		tracer.String(tracer.AttrAccountID, acct.String()),
	)
	ctx, span := s.tracer.Start(ctx, models.Schema+"."+op, attrs...)
	return ctx, func(err error) {
		if err == nil {
			span.AddEvent(tracer.EventCommitted)
		}
		span.End(err)
		s.metrics.Observe(op, start, err)
	}
}

func translate(err error, action string) error {
	var de *dErrors.Error
	switch {
	case errors.As(err, &de):
		return err
	case errors.Is(err, records.ErrDuplicateRecord):
		return dErrors.Wrap(err, dErrors.CodeConflict, "profile record already exists")
	case errors.Is(err, records.ErrRecordNotFound):
		return dErrors.Wrap(err, dErrors.CodeNotFound, "profile record not found")
	default:
		return dErrors.Wrap(err, dErrors.CodeInternal, action)
	}
}
