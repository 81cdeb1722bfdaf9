package openapierror

import "context"

type contextKey struct{}

var valuesFromContextKey = contextKey{}

// ContextWithValues attaches field values to a context.
// Definition.NewContext uses them for fields the caller does not override.
// Values already in ctx are kept unless vals replaces them.
func ContextWithValues(ctx context.Context, vals Values) context.Context {
	if len(vals) == 0 {
		return ctx
	}
	ctxVals := valuesFromContext(ctx)
	newVals := make(Values, len(ctxVals)+len(vals))
	for k, v := range ctxVals {
		newVals[k] = v
	}
	for k, v := range vals {
		newVals[k] = copyDeep(v)
	}
	return context.WithValue(ctx, valuesFromContextKey, newVals)
}

func valuesFromContext(ctx context.Context) Values {
	if ctx == nil {
		return nil
	}
	vals, ok := ctx.Value(valuesFromContextKey).(Values)
	if !ok {
		return nil
	}
	return vals
}
