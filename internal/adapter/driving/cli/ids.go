package cli

import (
	"fmt"
	"strings"

	"github.com/diillson/aws-sso-manager-go/internal/shared/types"
	"gopkg.in/yaml.v3"
)

// parseAccountIDs parses a bracketed list or a parenthesised tuple of quoted
// strings such as "['111111111111', '222222222222']" or "('111111111111',)".
// The IDs themselves are not validated.
func parseAccountIDs(raw string) ([]string, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(tupleAsList(raw)), &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrMalformedAccountIDs, err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) != 1 {
		return nil, fmt.Errorf("%w: got %q", types.ErrMalformedAccountIDs, raw)
	}

	seq := doc.Content[0]
	if seq.Kind != yaml.SequenceNode || seq.Style&yaml.FlowStyle == 0 {
		return nil, fmt.Errorf("%w: got %q", types.ErrMalformedAccountIDs, raw)
	}

	ids := make([]string, 0, len(seq.Content))
	for _, item := range seq.Content {
		quoted := item.Style&(yaml.SingleQuotedStyle|yaml.DoubleQuotedStyle) != 0
		if item.Kind != yaml.ScalarNode || !quoted {
			return nil, fmt.Errorf("%w: element %q is not a quoted string", types.ErrMalformedAccountIDs, item.Value)
		}
		ids = append(ids, item.Value)
	}
	return ids, nil
}

// tupleAsList rewrites "(a, b)" as "[a, b]". A parenthesised value without a
// comma is not a tuple and is left alone.
func tupleAsList(raw string) string {
	s := strings.TrimSpace(raw)
	if len(s) < 2 || s[0] != '(' || s[len(s)-1] != ')' {
		return raw
	}
	inner := s[1 : len(s)-1]
	if strings.TrimSpace(inner) != "" && !strings.Contains(inner, ",") {
		return raw
	}
	return "[" + inner + "]"
}
