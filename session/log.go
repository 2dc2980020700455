// Package session persists the command history of one shell session as a JSON document.
package session

import (
	"bytes"
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"
)

// TimeFormat is the ISO 8601 layout of record timestamps, local time with microseconds.
const TimeFormat = "2006-01-02T15:04:05.000000"

// Record is one executed command and its result.
type Record struct {
	Time    string `json:"time"`
	Command string `json:"command"`
	Result  string `json:"result"`
}

type document struct {
	Session []Record `json:"session"`
}

// Log is the session log file. Appends are not synchronized; a single goroutine must own the log.
type Log struct {
	path string
	now  func() time.Time
}

// Create truncates or creates the log file at path with an empty session.
func Create(path string) (*Log, error) {
	log := &Log{path: path, now: time.Now}

	if err := log.write(document{Session: []Record{}}); err != nil {
		return nil, errors.WithMessagef(err, "failed to create session log %s", path)
	}

	return log, nil
}

// Path returns the path of the log file.
func (log *Log) Path() string {
	return log.path
}

// Append adds a record for command and result. The whole document is read back and rewritten.
func (log *Log) Append(command, result string) error {
	doc, err := log.read()
	if err != nil {
		return err
	}

	doc.Session = append(doc.Session, Record{
		Time:    log.now().Format(TimeFormat),
		Command: command,
		Result:  result,
	})

	if err := log.write(doc); err != nil {
		return errors.WithMessagef(err, "failed to write session log %s", log.path)
	}

	return nil
}

// Records returns all records in append order.
func (log *Log) Records() ([]Record, error) {
	doc, err := log.read()
	if err != nil {
		return nil, err
	}
	return doc.Session, nil
}

func (log *Log) read() (document, error) {
	var doc document

	data, err := os.ReadFile(log.path)
	if err != nil {
		return doc, errors.WithMessagef(err, "failed to read session log %s", log.path)
	}

	if err := json.Unmarshal(data, &doc); err != nil {
		return doc, errors.WithMessagef(err, "failed to decode session log %s", log.path)
	}

	if doc.Session == nil {
		doc.Session = []Record{}
	}

	return doc, nil
}

func (log *Log) write(doc document) error {
	var buf bytes.Buffer

	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(doc); err != nil {
		return err
	}

	return os.WriteFile(log.path, buf.Bytes(), 0644)
}
