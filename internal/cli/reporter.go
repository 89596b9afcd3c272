package cli

import "log/slog"

// slogReporter forwards migrate failures to structured logging, tags
// becoming attributes.
type slogReporter struct {
	log *slog.Logger
}

func (r slogReporter) Capture(err error, tags map[string]string) {
	attrs := make([]any, 0, 2*len(tags)+2)
	attrs = append(attrs, "error", err)
	for k, v := range tags {
		attrs = append(attrs, k, v)
	}
	r.log.Error("import failed", attrs...)
}
