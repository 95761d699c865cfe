package component

import "github.com/corvid-labs/tessera/ecs"

const KindTag ecs.Kind = "tag"

// Tag is a set of string labels for membership queries
type Tag struct {
	ecs.Owned
	labels map[string]struct{}
}

// NewTag creates a tag component with the given labels
func NewTag(labels ...string) *Tag {
	t := &Tag{labels: make(map[string]struct{}, len(labels))}
	for _, l := range labels {
		t.labels[l] = struct{}{}
	}
	return t
}

func (*Tag) Kind() ecs.Kind { return KindTag }

// Add inserts a label
func (t *Tag) Add(label string) {
	t.labels[label] = struct{}{}
}

// Remove deletes a label; absent labels are a no-op
func (t *Tag) Remove(label string) {
	delete(t.labels, label)
}

// Has reports label membership
func (t *Tag) Has(label string) bool {
	_, ok := t.labels[label]
	return ok
}

// Labels returns the labels in unspecified order
func (t *Tag) Labels() []string {
	out := make([]string, 0, len(t.labels))
	for l := range t.labels {
		out = append(out, l)
	}
	return out
}
