// Copyright (c) 2026 HypeHub. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package respond

import "net/http"

// Recorder wraps an [http.ResponseWriter] and remembers the status code and
// whether the response has started.
type Recorder struct {
	http.ResponseWriter
	status  int
	started bool
}

// Track wraps writer in a [Recorder] unless it already is one.
func Track(writer http.ResponseWriter) *Recorder {
	if recorder, ok := writer.(*Recorder); ok {
		return recorder
	}
	return &Recorder{ResponseWriter: writer, status: http.StatusOK}
}

// WriteHeader records the status code and marks the response as started.
func (recorder *Recorder) WriteHeader(code int) {
	if recorder.started {
		return
	}
	recorder.status = code
	recorder.started = true
	recorder.ResponseWriter.WriteHeader(code)
}

// Write marks the response as started before writing the body.
func (recorder *Recorder) Write(body []byte) (int, error) {
	recorder.started = true
	return recorder.ResponseWriter.Write(body)
}

// Status returns the recorded status code (200 if none was written).
func (recorder *Recorder) Status() int { return recorder.status }

// Started reports whether headers or body have been written.
func (recorder *Recorder) Started() bool { return recorder.started }

// Unwrap exposes the underlying writer to [http.ResponseController].
func (recorder *Recorder) Unwrap() http.ResponseWriter { return recorder.ResponseWriter }

// Started reports whether the response behind writer has begun. The writer
// chain is walked through Unwrap; writers with no [Recorder] are assumed fresh.
func Started(writer http.ResponseWriter) bool {
	for writer != nil {
		if recorder, ok := writer.(*Recorder); ok {
			return recorder.started
		}
		unwrapper, ok := writer.(interface{ Unwrap() http.ResponseWriter })
		if !ok {
			return false
		}
		writer = unwrapper.Unwrap()
	}
	return false
}
