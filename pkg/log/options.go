package log

type Option func(logger *gosoLogger) error

func WithContextFieldsResolver(resolver ...ContextFieldsResolverFunction) Option {
	return func(logger *gosoLogger) error {
		logger.ctxResolvers = append(logger.ctxResolvers, resolver...)

		return nil
	}
}

func WithFields(fields map[string]any) Option {
	return func(logger *gosoLogger) error {
		logger.data.Fields = mergeFields(logger.data.Fields, fields)

		return nil
	}
}

func WithHandlers(handler ...Handler) Option {
	return func(logger *gosoLogger) error {
		logger.handlers = append(logger.handlers, handler...)

		return nil
	}
}
