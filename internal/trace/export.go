package trace

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
)

// ExportJSON renders the trace as the JSON document described in spec §6:
// {"trace":{"entry_count":N,"max_depth":D,"entries":[...],"stats":{...}}}.
// Built incrementally with sjson rather than encoding/json so the key
// order on the wire matches the schema exactly regardless of struct field
// order.
func (t *Tracer) ExportJSON() (string, error) {
	doc := "{}"
	var err error

	doc, err = sjson.Set(doc, "trace.entry_count", t.EntryCount())
	if err != nil {
		return "", err
	}
	doc, err = sjson.Set(doc, "trace.max_depth", t.MaxDepthReached())
	if err != nil {
		return "", err
	}
	doc, err = sjson.SetRaw(doc, "trace.entries", "[]")
	if err != nil {
		return "", err
	}

	for i, e := range t.entries {
		path := fmt.Sprintf("trace.entries.%d", i)
		doc, err = sjson.Set(doc, path+".type", e.Kind.Name())
		if err != nil {
			return "", err
		}
		doc, err = sjson.Set(doc, path+".depth", e.Depth)
		if err != nil {
			return "", err
		}
		if !e.Timestamp.IsZero() {
			doc, err = sjson.Set(doc, path+".timestamp", e.Timestamp.Format("15:04:05.000"))
			if err != nil {
				return "", err
			}
		}
		doc, err = sjson.Set(doc, path+".elapsed_ns", e.ElapsedNS)
		if err != nil {
			return "", err
		}
		doc, err = sjson.Set(doc, path+".message", e.Message)
		if err != nil {
			return "", err
		}
		if e.HasValue {
			doc, err = sjson.Set(doc, path+".value", e.Value.String())
			if err != nil {
				return "", err
			}
		}
	}

	stats := t.GetStats()
	doc, err = sjson.Set(doc, "trace.stats.nodes_entered", stats.NodesEntered)
	if err != nil {
		return "", err
	}
	doc, err = sjson.Set(doc, "trace.stats.nodes_exited", stats.NodesExited)
	if err != nil {
		return "", err
	}
	doc, err = sjson.Set(doc, "trace.stats.conditions_evaluated", stats.ConditionsEvaluated)
	if err != nil {
		return "", err
	}
	doc, err = sjson.Set(doc, "trace.stats.decisions_made", stats.DecisionsMade)
	if err != nil {
		return "", err
	}
	doc, err = sjson.Set(doc, "trace.stats.consequences_succeeded", stats.ConsequencesSucceeded)
	if err != nil {
		return "", err
	}
	doc, err = sjson.Set(doc, "trace.stats.consequences_failed", stats.ConsequencesFailed)
	if err != nil {
		return "", err
	}
	doc, err = sjson.Set(doc, "trace.stats.rules_executed", stats.RulesExecuted)
	if err != nil {
		return "", err
	}
	doc, err = sjson.Set(doc, "trace.stats.variables_changed", stats.VariablesChanged)
	if err != nil {
		return "", err
	}
	doc, err = sjson.Set(doc, "trace.stats.errors_occurred", stats.ErrorsOccurred)
	if err != nil {
		return "", err
	}

	return string(pretty.Pretty([]byte(doc))), nil
}

// ExportJSONFile writes ExportJSON's output to path.
func (t *Tracer) ExportJSONFile(path string) error {
	doc, err := t.ExportJSON()
	if err != nil {
		return err
	}
	return os.WriteFile(path, []byte(doc), 0o644)
}

// ExportCSV renders the trace as a CSV with the fixed header
// "Type,Depth,Timestamp,ElapsedNS,Message,Value" (spec §6), quoting any
// field that contains a comma, quote, or newline.
func (t *Tracer) ExportCSV() string {
	var b strings.Builder
	b.WriteString("Type,Depth,Timestamp,ElapsedNS,Message,Value\n")
	for _, e := range t.entries {
		ts := ""
		if !e.Timestamp.IsZero() {
			ts = e.Timestamp.Format("15:04:05.000")
		}
		val := ""
		if e.HasValue {
			val = e.Value.String()
		}
		fields := []string{
			e.Kind.Name(),
			strconv.Itoa(e.Depth),
			ts,
			strconv.FormatInt(e.ElapsedNS, 10),
			e.Message,
			val,
		}
		for i, f := range fields {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(csvQuote(f))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// ExportCSVFile writes ExportCSV's output to path.
func (t *Tracer) ExportCSVFile(path string) error {
	return os.WriteFile(path, []byte(t.ExportCSV()), 0o644)
}

func csvQuote(s string) string {
	if strings.ContainsAny(s, ",\"\n") {
		return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
	}
	return s
}

// DumpPretty renders the retained entries as an indented, human-readable
// listing (--dump-trace), reusing entryLine for per-entry formatting.
func (t *Tracer) DumpPretty() string {
	var b strings.Builder
	for _, e := range t.entries {
		b.WriteString(entryLine(e))
		b.WriteByte('\n')
	}
	return b.String()
}
