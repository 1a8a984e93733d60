package domain

import "slices"

// FetchRegistry maps categories to descriptors for one region. Iteration
// follows insertion order. Entries are never replaced once added.
type FetchRegistry struct {
	region  string
	order   []Category
	entries map[Category]Descriptor
	skipped []Category
}

func NewFetchRegistry(region string) *FetchRegistry {
	return &FetchRegistry{
		region:  region,
		entries: make(map[Category]Descriptor),
	}
}

func (r *FetchRegistry) Region() string { return r.region }

// Add registers a descriptor and reports false if the category already exists.
func (r *FetchRegistry) Add(category Category, d Descriptor) bool {
	if _, exists := r.entries[category]; exists {
		return false
	}
	r.entries[category] = d
	r.order = append(r.order, category)
	return true
}

// Remove drops a category. Removing an absent category is a no-op and
// reports false.
func (r *FetchRegistry) Remove(category Category) bool {
	if _, exists := r.entries[category]; !exists {
		return false
	}
	delete(r.entries, category)
	for i, c := range r.order {
		if c == category {
			r.order = append(r.order[:i:i], r.order[i+1:]...)
			break
		}
	}
	r.skipped = append(r.skipped, category)
	return true
}

// SkipDependent records a category produced by dependent fetches as
// skipped. It has no descriptor of its own; the collector consults
// IsSkipped before issuing its calls.
func (r *FetchRegistry) SkipDependent(category Category) bool {
	if r.IsSkipped(category) {
		return false
	}
	r.skipped = append(r.skipped, category)
	return true
}

func (r *FetchRegistry) IsSkipped(category Category) bool {
	return slices.Contains(r.skipped, category)
}

func (r *FetchRegistry) Get(category Category) (Descriptor, bool) {
	d, ok := r.entries[category]
	return d, ok
}

// Categories returns the registered categories in registry order.
func (r *FetchRegistry) Categories() []Category {
	out := make([]Category, len(r.order))
	copy(out, r.order)
	return out
}

// Skipped returns the categories removed by the operator's skip list.
func (r *FetchRegistry) Skipped() []Category {
	out := make([]Category, len(r.skipped))
	copy(out, r.skipped)
	return out
}

func (r *FetchRegistry) Len() int { return len(r.order) }
