// Package service implements the user record operations: create, replace,
// merge-update, remove, fetch, and the UserExists capability other schemas
// depend on.
package service

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks Store

import (
	"context"
	"errors"
	"time"

	"recordkeeper/internal/events"
	"recordkeeper/internal/platform/metrics"
	"recordkeeper/internal/platform/tracer"
	"recordkeeper/internal/platform/txn"
	"recordkeeper/internal/records"
	"recordkeeper/internal/user/models"
	id "recordkeeper/pkg/domain"
	dErrors "recordkeeper/pkg/domain-errors"
)

// Store is the user record store. *records.Store[id.AccountID, models.Record]
// satisfies it.
type Store interface {
	Create(ctx context.Context, acct id.AccountID, rec models.Record) error
	Read(ctx context.Context, acct id.AccountID) (models.Record, error)
	Exists(ctx context.Context, acct id.AccountID) (bool, error)
	Replace(ctx context.Context, acct id.AccountID, rec models.Record) error
	Merge(ctx context.Context, acct id.AccountID, patch records.Patch[models.Record]) error
	Remove(ctx context.Context, acct id.AccountID) error
}

// Service orchestrates user record lifecycle.
type Service struct {
	store   Store
	tx      txn.Serializer
	emitter *events.Emitter
	metrics *metrics.Metrics
	tracer  tracer.Tracer
}

func New(store Store, opts ...Option) *Service {
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
		tx:      cfg.tx,
		emitter: events.NewEmitter(models.Schema, cfg.logger, cfg.publisher),
		metrics: cfg.metrics,
		tracer:  cfg.tracer,
	}
}

// Create stores a new user record for acct. Fields are encoded before the
// duplicate check, so an oversized field fails even for an existing account.
func (s *Service) Create(ctx context.Context, acct id.AccountID, cmd models.CreateCommand) (err error) {
	ctx, done := s.begin(ctx, "create", acct)
	defer func() { done(err) }()

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		rec, err := models.NewRecord(cmd)
		if err != nil {
			return err
		}
		if err := s.store.Create(txCtx, acct, rec); err != nil {
			return translate(err, "failed to create user")
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

// Replace overwrites every field of the user record. It does not require a
// prior record: replacing an absent account creates it.
func (s *Service) Replace(ctx context.Context, acct id.AccountID, cmd models.CreateCommand) (err error) {
	ctx, done := s.begin(ctx, "replace", acct)
	defer func() { done(err) }()

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		rec, err := models.NewRecord(cmd)
		if err != nil {
			return err
		}
		if err := s.store.Replace(txCtx, acct, rec); err != nil {
			return translate(err, "failed to replace user")
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.emitter.Emit(ctx, events.KindUpdated, acct, nil)
	return nil
}

// Update merges the supplied fields into the existing record. Either every
// supplied field is committed or none is.
func (s *Service) Update(ctx context.Context, acct id.AccountID, update models.Update) (err error) {
	ctx, done := s.begin(ctx, "update", acct, tracer.Attribute{Key: tracer.AttrFields, Value: update.Fields()})
	defer func() { done(err) }()

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.store.Merge(txCtx, acct, update); err != nil {
			return translate(err, "failed to update user")
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.emitter.Emit(ctx, events.KindUpdated, acct, nil)
	return nil
}

// Remove deletes the user record. Records in other schemas that depend on
// it are left in place.
func (s *Service) Remove(ctx context.Context, acct id.AccountID) (err error) {
	ctx, done := s.begin(ctx, "remove", acct)
	defer func() { done(err) }()

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.store.Remove(txCtx, acct); err != nil {
			return translate(err, "failed to remove user")
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

// Fetch returns the projection of the user record and emits it as a fetched
// event.
func (s *Service) Fetch(ctx context.Context, acct id.AccountID) (view *models.View, err error) {
	ctx, done := s.begin(ctx, "fetch", acct)
	defer func() { done(err) }()

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		rec, err := s.store.Read(txCtx, acct)
		if err != nil {
			return translate(err, "failed to fetch user")
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

// UserExists reports whether acct has a user record. It does not take the
// serializer because other schemas call it from inside their own calls.
func (s *Service) UserExists(ctx context.Context, acct id.AccountID) (bool, error) {
	ok, err := s.store.Exists(ctx, acct)
	if err != nil {
		return false, translate(err, "failed to look up user")
	}
	return ok, nil
}

// Lookup is a read-only query for other components: it returns the
// projection and whether a record exists, without emitting an event.
func (s *Service) Lookup(ctx context.Context, acct id.AccountID) (models.View, bool, error) {
	rec, err := s.store.Read(ctx, acct)
	if errors.Is(err, records.ErrRecordNotFound) {
		return models.View{}, false, nil
	}
	if err != nil {
		return models.View{}, false, translate(err, "failed to look up user")
	}
	return models.ToView(rec), true, nil
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

// translate maps store sentinels to domain errors once. Errors that already
// carry a domain code (field encoding, serializer) pass through unchanged.
func translate(err error, action string) error {
	var de *dErrors.Error
	switch {
	case errors.As(err, &de):
		return err
	case errors.Is(err, records.ErrDuplicateRecord):
		return dErrors.Wrap(err, dErrors.CodeConflict, "user record already exists")
	case errors.Is(err, records.ErrRecordNotFound):
		return dErrors.Wrap(err, dErrors.CodeNotFound, "user record not found")
	default:
		return dErrors.Wrap(err, dErrors.CodeInternal, action)
	}
}
