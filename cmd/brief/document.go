package main

import (
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v3"

	"github.com/moriyoshi/brief/internal/expand"
	"github.com/moriyoshi/brief/mail"
)

func expandNode(n *yaml.Node) {
	if n.Kind == yaml.ScalarNode {
		n.Value = expand.Expand(n.Value, expand.Env)
		return
	}
	for _, c := range n.Content {
		expandNode(c)
	}
}

// parseDocument builds a message out of a YAML mapping of header field names
// to mailbox lists, keeping the order of the mapping. Values are either a
// comma-separated string or a sequence of mailboxes; ${env.NAME} placeholders
// are expanded first.
func parseDocument(b []byte) (mail.Message, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return mail.Message{}, err
	}
	if len(doc.Content) == 0 {
		return mail.Message{}, fmt.Errorf("document is empty")
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return mail.Message{}, fmt.Errorf("line %d: document is not a mapping", root.Line)
	}
	expandNode(root)
	var builder mail.MessageBuilder
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i], root.Content[i+1]
		f, err := mail.ParseField(key.Value)
		if err != nil {
			return mail.Message{}, fmt.Errorf("line %d: %w", key.Line, err)
		}
		var ms mail.Mailboxes
		if err := value.Decode(&ms); err != nil {
			return mail.Message{}, fmt.Errorf("%s: %w", f, err)
		}
		builder = builder.Header(mail.Header{Field: f, Mailboxes: ms})
	}
	return builder.Build(), nil
}

func loadDocument(path string) (mail.Message, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return mail.Message{}, err
	}
	m, err := parseDocument(b)
	if err != nil {
		return mail.Message{}, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}
