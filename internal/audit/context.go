package audit

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RequestMeta is the request information stamped onto audit rows.
type RequestMeta struct {
	RequestID      string
	IPAddress      string
	UserAgent      string
	ImpersonatorID primitive.ObjectID
}

type metaKey struct{}

// WithRequestMeta stores meta in ctx.
func WithRequestMeta(ctx context.Context, meta RequestMeta) context.Context {
	return context.WithValue(ctx, metaKey{}, meta)
}

// MetaFromContext returns the stored meta, or the zero value.
func MetaFromContext(ctx context.Context) RequestMeta {
	if ctx == nil {
		return RequestMeta{}
	}
	meta, _ := ctx.Value(metaKey{}).(RequestMeta)
	return meta
}

// WithImpersonator marks every audit row written under ctx with the impersonating admin.
func WithImpersonator(ctx context.Context, adminID primitive.ObjectID) context.Context {
	meta := MetaFromContext(ctx)
	meta.ImpersonatorID = adminID
	return WithRequestMeta(ctx, meta)
}
