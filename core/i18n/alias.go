package i18n

import (
	"maps"
	"regexp"
	"slices"
	"strings"
)

// aliasPattern matches {{Key}} and {{Key[sub]}}.
var aliasPattern = regexp.MustCompile(`\{\{([^{}\[\]]+)(?:\[([^{}\[\]]+)\])?\}\}`)

// aliasNode identifies a string in the table: a plain entry, or one leaf of a leaf table.
type aliasNode struct {
	key  string
	sub  string
	leaf bool
}

func (n aliasNode) String() string {
	if n.leaf {
		return n.key + "[" + n.sub + "]"
	}
	return n.key
}

type aliasMark uint8

const (
	unvisited aliasMark = iota
	inProgress
	done
)

type aliasResolver struct {
	raw   Table
	marks map[aliasNode]aliasMark
	memo  map[aliasNode]string
}

// ResolveAliases expands {{Key}} and {{Key[sub]}} references in every string
// of raw and returns the result as a new table. raw is not modified.
//
// References are resolved depth-first with memoization, so declaration order
// does not matter. Keys and selectors are visited in sorted order, which makes
// the reported reference deterministic when the table is inconsistent.
//
// A {{Key[sub]}} reference to a plain string ignores the qualifier. Invalid
// entries and non-string leaves are copied unchanged.
//
// All failures are *AliasError values wrapping ErrUnknownAlias,
// ErrUnknownAliasSubkey, ErrCircularAlias or ErrAliasObject.
func ResolveAliases(raw Table) (Table, error) {
	r := &aliasResolver{
		raw:   raw,
		marks: make(map[aliasNode]aliasMark),
		memo:  make(map[aliasNode]string),
	}

	out := make(Table, len(raw))
	for _, key := range slices.Sorted(maps.Keys(raw)) {
		entry := raw[key]

		if s, ok := entry.(string); ok {
			text, err := r.expand(aliasNode{key: key}, s)
			if err != nil {
				return nil, err
			}
			out[key] = text
			continue
		}

		leaves, ok := asLeafTable(entry)
		if !ok {
			out[key] = entry
			continue
		}

		resolved := make(map[string]any, len(leaves))
		for _, sub := range slices.Sorted(maps.Keys(leaves)) {
			s, ok := leaves[sub].(string)
			if !ok {
				resolved[sub] = leaves[sub]
				continue
			}
			text, err := r.expand(aliasNode{key: key, sub: sub, leaf: true}, s)
			if err != nil {
				return nil, err
			}
			resolved[sub] = text
		}
		out[key] = resolved
	}

	return out, nil
}

// expand returns the text of node with all its references resolved.
// A reference to a node that is still in progress closes a cycle, which is
// reported against the node holding the reference.
func (r *aliasResolver) expand(node aliasNode, text string) (string, error) {
	if r.marks[node] == done {
		return r.memo[node], nil
	}
	r.marks[node] = inProgress

	var (
		b    strings.Builder
		last int
	)
	for _, m := range aliasPattern.FindAllStringSubmatchIndex(text, -1) {
		key := text[m[2]:m[3]]
		sub, qualified := "", m[4] >= 0
		if qualified {
			sub = text[m[4]:m[5]]
		}

		target, targetText, err := r.target(key, sub, qualified)
		if err != nil {
			return "", err
		}
		if r.marks[target] == inProgress {
			return "", &AliasError{Ref: node.String(), Err: ErrCircularAlias}
		}
		value, err := r.expand(target, targetText)
		if err != nil {
			return "", err
		}

		b.WriteString(text[last:m[0]])
		b.WriteString(value)
		last = m[1]
	}
	b.WriteString(text[last:])

	r.marks[node] = done
	r.memo[node] = b.String()
	return r.memo[node], nil
}

// target finds the node a reference points to, together with its raw text.
func (r *aliasResolver) target(key, sub string, qualified bool) (aliasNode, string, error) {
	ref := key
	if qualified {
		ref = key + "[" + sub + "]"
	}

	entry, ok := r.raw[key]
	if !ok {
		return aliasNode{}, "", &AliasError{Ref: ref, Err: ErrUnknownAlias}
	}
	if s, ok := entry.(string); ok {
		return aliasNode{key: key}, s, nil
	}

	leaves, ok := asLeafTable(entry)
	if !ok {
		return aliasNode{}, "", &AliasError{Ref: ref, Err: ErrUnknownAlias}
	}
	if !qualified {
		return aliasNode{}, "", &AliasError{Ref: key, Err: ErrAliasObject}
	}
	s, ok := leaves[sub].(string)
	if !ok {
		return aliasNode{}, "", &AliasError{Ref: ref, Err: ErrUnknownAliasSubkey}
	}
	return aliasNode{key: key, sub: sub, leaf: true}, s, nil
}
