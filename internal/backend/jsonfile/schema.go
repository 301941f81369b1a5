package jsonfile

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"todo/internal/service"
)

const schemaURL = "https://todo.local/schema/tasks.schema.json"

//go:embed tasks.schema.json
var schemaJSON []byte

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

func tasksSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		compiler.AssertFormat = true
		if err := compiler.AddResource(schemaURL, bytes.NewReader(schemaJSON)); err != nil {
			schemaErr = fmt.Errorf("add tasks schema: %w", err)
			return
		}
		compiledSchema, schemaErr = compiler.Compile(schemaURL)
	})
	return compiledSchema, schemaErr
}

// SchemaError describes one violation of the tasks file schema.
type SchemaError struct {
	Path string // e.g. "[2].priority"
	Msg  string
}

func (e *SchemaError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s", e.Path, e.Msg)
	}
	return e.Msg
}

// decode validates data against the tasks schema and decodes it.
// Duplicate ids are rejected since ids are never reused.
func decode(data []byte) ([]service.Task, error) {
	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse tasks file: %w", err)
	}

	schema, err := tasksSchema()
	if err != nil {
		return nil, err
	}
	if err := schema.Validate(doc); err != nil {
		return nil, schemaErrors(err)
	}

	var tasks []service.Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		return nil, fmt.Errorf("decode tasks: %w", err)
	}

	seen := make(map[string]int, len(tasks))
	for i, t := range tasks {
		id := t.ID.String()
		if first, ok := seen[id]; ok {
			return nil, &SchemaError{
				Path: fmt.Sprintf("[%d].id", i),
				Msg:  fmt.Sprintf("duplicate id %s (first seen at [%d])", id, first),
			}
		}
		seen[id] = i
	}
	return tasks, nil
}

// schemaErrors flattens a jsonschema validation error into its leaf causes.
func schemaErrors(err error) error {
	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return err
	}
	var msgs []string
	collect(ve, &msgs)
	if len(msgs) == 1 {
		return fmt.Errorf("invalid tasks file: %s", msgs[0])
	}
	return fmt.Errorf("invalid tasks file: %s", strings.Join(msgs, "; "))
}

func collect(ve *jsonschema.ValidationError, msgs *[]string) {
	if len(ve.Causes) == 0 {
		se := &SchemaError{Path: pointerToPath(ve.InstanceLocation), Msg: ve.Message}
		*msgs = append(*msgs, se.Error())
		return
	}
	for _, cause := range ve.Causes {
		collect(cause, msgs)
	}
}

// pointerToPath converts a JSON pointer such as "/2/priority" to "[2].priority".
func pointerToPath(ptr string) string {
	ptr = strings.TrimPrefix(ptr, "#")
	ptr = strings.TrimPrefix(ptr, "/")
	if ptr == "" {
		return ""
	}

	var b strings.Builder
	for _, part := range strings.Split(ptr, "/") {
		part = strings.ReplaceAll(part, "~1", "/")
		part = strings.ReplaceAll(part, "~0", "~")
		if idx, err := strconv.Atoi(part); err == nil {
			fmt.Fprintf(&b, "[%d]", idx)
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(part)
	}
	return b.String()
}
