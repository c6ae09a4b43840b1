// Package gormrepo implements the repository interfaces on top of gorm.
package gormrepo

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"storeapi/internal/database"
	"storeapi/internal/repository"
)

var tracer = otel.Tracer("storeapi/repository")

// Builder turns a create payload into a record ready to insert.
type Builder[T any] interface {
	Build() *T
}

// Applier merges an update payload into an existing record.
type Applier[T any] interface {
	ApplyTo(*T)
}

type tabler interface {
	TableName() string
}

// Base implements repository.Repository for any record type. Entity
// repositories embed it and add their own filtered reads.
type Base[T any, C Builder[T], U Applier[T]] struct {
	db    *gorm.DB
	table string
}

// NewBase returns a Base backed by db.
func NewBase[T any, C Builder[T], U Applier[T]](db *gorm.DB) *Base[T, C, U] {
	var zero T
	table := fmt.Sprintf("%T", zero)
	if t, ok := any(zero).(tabler); ok {
		table = t.TableName()
	}
	return &Base[T, C, U]{db: db, table: table}
}

var errAbsent = errors.New("record absent")

// Create inserts the record built from in and returns it with its assigned ID.
func (b *Base[T, C, U]) Create(ctx context.Context, in C) (*T, error) {
	ctx, span := b.startSpan(ctx, "Create")
	defer span.End()

	rec := in.Build()
	err := database.WithTx(ctx, b.db, func(tx *gorm.DB) error {
		return tx.Omit(clause.Associations).Create(rec).Error
	})
	if err != nil {
		return nil, b.fail(span, "create", err)
	}
	return rec, nil
}

// Get returns the record with the given ID, or nil when there is none.
func (b *Base[T, C, U]) Get(ctx context.Context, id int64) (*T, error) {
	ctx, span := b.startSpan(ctx, "Get", attribute.Int64("entity.id", id))
	defer span.End()

	var rec T
	err := b.db.WithContext(ctx).First(&rec, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, b.fail(span, "get", err)
	}
	return &rec, nil
}

// GetMulti returns one page of records in ascending ID order.
func (b *Base[T, C, U]) GetMulti(ctx context.Context, page repository.Page) ([]T, error) {
	return b.list(ctx, "GetMulti", page, nil)
}

// Update applies in to a copy of existing and writes every column back.
// existing itself is never modified.
func (b *Base[T, C, U]) Update(ctx context.Context, existing *T, in U) (*T, error) {
	ctx, span := b.startSpan(ctx, "Update")
	defer span.End()

	updated := *existing
	in.ApplyTo(&updated)
	err := database.WithTx(ctx, b.db, func(tx *gorm.DB) error {
		return tx.Model(&updated).Select("*").Omit("id", clause.Associations).Updates(&updated).Error
	})
	if err != nil {
		return nil, b.fail(span, "update", err)
	}
	return &updated, nil
}

// Delete removes the record with the given ID and returns what was removed.
// It returns nil when there is no such record.
func (b *Base[T, C, U]) Delete(ctx context.Context, id int64) (*T, error) {
	ctx, span := b.startSpan(ctx, "Delete", attribute.Int64("entity.id", id))
	defer span.End()

	var rec T
	err := database.WithTx(ctx, b.db, func(tx *gorm.DB) error {
		if err := tx.First(&rec, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errAbsent
			}
			return err
		}
		return tx.Delete(&rec).Error
	})
	if errors.Is(err, errAbsent) {
		return nil, nil
	}
	if err != nil {
		return nil, b.fail(span, "delete", err)
	}
	return &rec, nil
}

// list runs a paged, ID ordered select narrowed by scope.
func (b *Base[T, C, U]) list(ctx context.Context, op string, page repository.Page, scope func(*gorm.DB) *gorm.DB) ([]T, error) {
	ctx, span := b.startSpan(ctx, op,
		attribute.Int("page.skip", page.Skip),
		attribute.Int("page.limit", page.Limit),
	)
	defer span.End()

	q := b.db.WithContext(ctx)
	if scope != nil {
		q = scope(q)
	}
	out := make([]T, 0)
	err := q.Order("id ASC").Offset(page.Skip).Limit(page.Limit).Find(&out).Error
	if err != nil {
		return nil, b.fail(span, op, err)
	}
	return out, nil
}

// first fetches a single record matching query, or nil when there is none.
func (b *Base[T, C, U]) first(ctx context.Context, op string, query string, args ...any) (*T, error) {
	ctx, span := b.startSpan(ctx, op)
	defer span.End()

	var rec T
	err := b.db.WithContext(ctx).Where(query, args...).Order("id ASC").First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, b.fail(span, op, err)
	}
	return &rec, nil
}

func (b *Base[T, C, U]) startSpan(ctx context.Context, op string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	attrs = append(attrs, attribute.String("db.table", b.table))
	return tracer.Start(ctx, "repository."+op, trace.WithAttributes(attrs...))
}

func (b *Base[T, C, U]) fail(span trace.Span, op string, err error) error {
	err = translateError(err)
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return fmt.Errorf("%s %s: %w", op, b.table, err)
}
