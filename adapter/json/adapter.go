package json

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/tidwall/jsonc"

	"github.com/fabll/core/literal"
	"github.com/fabll/core/solver"
)

// Adapter encodes and decodes the Literal on-wire form (spec §6) and
// loads solver.Config documents.
//
// Thread Safety: Adapter is safe for concurrent use after construction.
// No shared mutable state exists; all context flows through parameters.
type Adapter struct {
	strictJSON bool
	indent     string
}

// Option configures an Adapter.
type Option func(*Adapter)

// WithStrictJSON disables jsonc preprocessing, decoding with
// encoding/json directly. Comments and trailing commas become parse
// errors. Default: false (jsonc-tolerant).
func WithStrictJSON(strict bool) Option {
	return func(a *Adapter) { a.strictJSON = strict }
}

// WithIndent enables pretty-printed output using the given per-level
// indent string (e.g. "  "). Default: compact output.
func WithIndent(indent string) Option {
	return func(a *Adapter) { a.indent = indent }
}

// NewAdapter constructs an Adapter with the given options applied over
// the defaults (jsonc-tolerant parsing, compact output).
func NewAdapter(opts ...Option) *Adapter {
	a := &Adapter{}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *Adapter) preprocess(data []byte) []byte {
	if a.strictJSON {
		return data
	}
	return jsonc.ToJSON(data)
}

func (a *Adapter) marshal(v any) ([]byte, error) {
	if a.indent != "" {
		return json.MarshalIndent(v, "", a.indent)
	}
	return json.Marshal(v)
}

// literalEnvelope is the "kind"-discriminated wire shape documented in
// doc.go.
type literalEnvelope struct {
	Kind string `json:"kind"`

	// interval
	Unit   string       `json:"unit,omitempty"`
	Ranges [][2]float64 `json:"ranges,omitempty"`

	// enum
	EnumType string   `json:"enum_type,omitempty"`
	Members  []string `json:"members,omitempty"`

	// bool
	Value string `json:"value,omitempty"`
}

// EncodeLiteral renders lit in its on-wire envelope.
func (a *Adapter) EncodeLiteral(lit literal.Literal) ([]byte, error) {
	env, err := encodeEnvelope(lit)
	if err != nil {
		return nil, err
	}
	return a.marshal(env)
}

// DecodeLiteral parses data as a single literal envelope.
func (a *Adapter) DecodeLiteral(data []byte) (literal.Literal, error) {
	var env literalEnvelope
	if err := json.Unmarshal(a.preprocess(data), &env); err != nil {
		return nil, fmt.Errorf("json adapter: decode literal: %w", err)
	}
	return decodeEnvelope(env)
}

func encodeEnvelope(lit literal.Literal) (literalEnvelope, error) {
	switch v := lit.(type) {
	case literal.QuantityIntervalDisjoint:
		ranges := make([][2]float64, len(v.Ranges()))
		for i, r := range v.Ranges() {
			ranges[i] = [2]float64{r.Min, r.Max}
		}
		return literalEnvelope{Kind: "interval", Unit: v.Unit().Symbol(), Ranges: ranges}, nil
	case literal.EnumSet:
		return literalEnvelope{Kind: "enum", EnumType: v.EnumType(), Members: v.Members()}, nil
	case literal.BoolSet:
		return literalEnvelope{Kind: "bool", Value: boolSetValue(v)}, nil
	default:
		return literalEnvelope{}, fmt.Errorf("%w: %T", ErrUnknownLiteralKind, lit)
	}
}

func decodeEnvelope(env literalEnvelope) (literal.Literal, error) {
	switch env.Kind {
	case "interval":
		ranges := make([]literal.Range, len(env.Ranges))
		for i, r := range env.Ranges {
			ranges[i] = literal.Range{Min: r[0], Max: r[1]}
		}
		return literal.NewQuantityInterval(literal.NewUnit(env.Unit), ranges...), nil
	case "enum":
		if env.EnumType == "" {
			return nil, fmt.Errorf("%w: enum literal missing enum_type", ErrMalformedLiteral)
		}
		return literal.NewEnumSet(env.EnumType, env.Members...), nil
	case "bool":
		set, err := boolSetFromValue(env.Value)
		if err != nil {
			return nil, err
		}
		return set, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownLiteralKind, env.Kind)
	}
}

func boolSetValue(b literal.BoolSet) string {
	if v, ok := b.SingleValue(); ok {
		if v {
			return "true"
		}
		return "false"
	}
	if b.IsEmpty() {
		return "none"
	}
	return "any"
}

func boolSetFromValue(v string) (literal.BoolSet, error) {
	switch v {
	case "true":
		return literal.NewBoolSet(true), nil
	case "false":
		return literal.NewBoolSet(false), nil
	case "any":
		return literal.FullBoolSet(), nil
	case "none":
		return literal.EmptyBoolSet(), nil
	default:
		return literal.BoolSet{}, fmt.Errorf("%w: bool literal value %q must be one of true/false/any/none", ErrMalformedLiteral, v)
	}
}

// EncodeSnapshot renders a parameter-name-to-literal map as a JSON
// object of envelopes, the picker-cache persistence form (spec §6
// "Egress"). Keys are sorted for a stable, diffable encoding (spec §6
// "Determinism contract").
func (a *Adapter) EncodeSnapshot(snapshot map[string]literal.Literal) ([]byte, error) {
	names := make([]string, 0, len(snapshot))
	for name := range snapshot {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make(map[string]literalEnvelope, len(snapshot))
	for _, name := range names {
		env, err := encodeEnvelope(snapshot[name])
		if err != nil {
			return nil, fmt.Errorf("json adapter: encode snapshot %q: %w", name, err)
		}
		out[name] = env
	}
	return a.marshal(out)
}

// DecodeSnapshot parses data as a parameter-name-to-literal map.
func (a *Adapter) DecodeSnapshot(data []byte) (map[string]literal.Literal, error) {
	var raw map[string]literalEnvelope
	if err := json.Unmarshal(a.preprocess(data), &raw); err != nil {
		return nil, fmt.Errorf("json adapter: decode snapshot: %w", err)
	}
	out := make(map[string]literal.Literal, len(raw))
	for name, env := range raw {
		lit, err := decodeEnvelope(env)
		if err != nil {
			return nil, fmt.Errorf("json adapter: decode snapshot %q: %w", name, err)
		}
		out[name] = lit
	}
	return out, nil
}

// configDoc mirrors solver.Config with RewriteTimeout expressed as a
// duration string instead of raw nanoseconds.
type configDoc struct {
	LogSolving             bool   `json:"log_solving,omitempty"`
	KeepIntermediateGraphs bool   `json:"keep_intermediate_graphs,omitempty"`
	RewriteTimeout         string `json:"rewrite_timeout,omitempty"`
	MaxPasses              int    `json:"max_passes,omitempty"`
}

// DecodeConfig parses data as a solver.Config document.
func (a *Adapter) DecodeConfig(data []byte) (solver.Config, error) {
	var doc configDoc
	if err := json.Unmarshal(a.preprocess(data), &doc); err != nil {
		return solver.Config{}, fmt.Errorf("json adapter: decode config: %w", err)
	}
	cfg := solver.Config{
		LogSolving:             doc.LogSolving,
		KeepIntermediateGraphs: doc.KeepIntermediateGraphs,
		MaxPasses:              doc.MaxPasses,
	}
	if doc.RewriteTimeout != "" {
		d, err := time.ParseDuration(doc.RewriteTimeout)
		if err != nil {
			return solver.Config{}, fmt.Errorf("json adapter: decode config: rewrite_timeout: %w", err)
		}
		cfg.RewriteTimeout = d
	}
	return cfg, nil
}

// EncodeConfig renders cfg in the document form DecodeConfig reads.
func (a *Adapter) EncodeConfig(cfg solver.Config) ([]byte, error) {
	doc := configDoc{
		LogSolving:             cfg.LogSolving,
		KeepIntermediateGraphs: cfg.KeepIntermediateGraphs,
		MaxPasses:              cfg.MaxPasses,
	}
	if cfg.RewriteTimeout != 0 {
		doc.RewriteTimeout = cfg.RewriteTimeout.String()
	}
	return a.marshal(doc)
}
