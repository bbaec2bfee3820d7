package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/lgbarn/chessrules/internal/config"
	"github.com/lgbarn/chessrules/internal/replay"
)

// ReportWriter is the interface for writing replay reports to output.
// Different implementations handle different formats (text, JSON).
type ReportWriter interface {
	// WriteReport writes a single report to the output.
	WriteReport(rep *replay.Report) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// NewReportWriter returns the writer selected by cfg.Replay.JSON.
func NewReportWriter(w io.Writer, cfg *config.Config) ReportWriter {
	if cfg.Replay.JSON {
		return NewJSONWriter(w)
	}
	return NewTextWriter(w)
}

// TextWriter writes one block of text per report.
type TextWriter struct {
	w       io.Writer
	reports []*replay.Report
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer) *TextWriter {
	return &TextWriter{w: w}
}

// WriteReport writes a report immediately: a heading line, the move list
// and the final position.
func (tw *TextWriter) WriteReport(rep *replay.Report) error {
	tw.reports = append(tw.reports, rep)

	heading := fmt.Sprintf("%s:%d", rep.Name, rep.Line)
	var err error
	switch {
	case rep.Failed():
		_, err = fmt.Fprintf(tw.w, "%s  failed after %d plies: %v\n", heading, rep.Plies, rep.Err)
	default:
		_, err = fmt.Fprintf(tw.w, "%s  %s after %d plies\n", heading, StatusLine(rep.Status), rep.Plies)
	}
	if err != nil {
		return err
	}
	if rep.Duplicate {
		fmt.Fprintln(tw.w, "  duplicate final position")
	}
	if len(rep.Moves) > 0 {
		WriteMoveList(NewOutputWriter(tw.w, DefaultLineLength, "  "), rep.Moves, rep.Status.MoveNumber)
	}
	if rep.FinalFEN != "" {
		_, err = fmt.Fprintf(tw.w, "  %s\n", rep.FinalFEN)
	}
	return err
}

// Flush writes the summary of every report written so far.
func (tw *TextWriter) Flush() error {
	if len(tw.reports) == 0 {
		return nil
	}
	_, err := fmt.Fprintln(tw.w, replay.Summarize(tw.reports))
	tw.reports = tw.reports[:0]
	return err
}

// Close flushes the text writer.
func (tw *TextWriter) Close() error {
	return tw.Flush()
}

// JSONWriter writes reports in JSON format.
// It buffers reports and writes them as a JSON document on Close or Flush.
type JSONWriter struct {
	w       io.Writer
	reports []*replay.Report
	single  bool // If true, write each report immediately instead of batching
}

// NewJSONWriter creates a new JSON writer.
// By default, it batches reports and writes them with a summary on Close().
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w}
}

// NewJSONWriterSingle creates a JSON writer that writes each report
// immediately, one JSON object per line.
func NewJSONWriterSingle(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w, single: true}
}

// WriteReport buffers a report for JSON output (or writes immediately in single mode).
func (jw *JSONWriter) WriteReport(rep *replay.Report) error {
	if jw.single {
		return json.NewEncoder(jw.w).Encode(ReportToJSON(rep))
	}
	jw.reports = append(jw.reports, rep)
	return nil
}

// Flush writes all buffered reports as a JSON document.
func (jw *JSONWriter) Flush() error {
	if jw.single || len(jw.reports) == 0 {
		return nil
	}
	err := OutputReportsJSON(jw.w, jw.reports)
	jw.reports = jw.reports[:0]
	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}
