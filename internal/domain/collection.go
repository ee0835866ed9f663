package domain

import "encoding/json"

// Collection is the whole backing document: every seminar in stored order.
type Collection struct {
	Seminars []*Seminar `json:"seminars"`
}

// NewCollection returns an empty collection.
func NewCollection() *Collection {
	return &Collection{Seminars: []*Seminar{}}
}

// NextID returns one more than the highest id present, or 1 when empty.
// Ids freed by deleting the highest record are handed out again.
func (c *Collection) NextID() int64 {
	var highest int64
	for _, s := range c.Seminars {
		if s.ID > highest {
			highest = s.ID
		}
	}
	return highest + 1
}

// IndexOf returns the index of the first seminar with id, or -1.
func (c *Collection) IndexOf(id int64) int {
	for i, s := range c.Seminars {
		if s.ID == id {
			return i
		}
	}
	return -1
}

// Find returns the first seminar with id, or nil.
func (c *Collection) Find(id int64) *Seminar {
	if i := c.IndexOf(id); i >= 0 {
		return c.Seminars[i]
	}
	return nil
}

// Append stores s under the next free id and returns that id.
func (c *Collection) Append(s *Seminar) int64 {
	s.ID = c.NextID()
	c.Seminars = append(c.Seminars, s)
	return s.ID
}

// Replace overwrites the record with id. It reports false when id is absent.
func (c *Collection) Replace(id int64, s *Seminar) bool {
	i := c.IndexOf(id)
	if i < 0 {
		return false
	}
	s.ID = id
	c.Seminars[i] = s
	return true
}

// Remove deletes the first record with id. It reports false when id is absent.
func (c *Collection) Remove(id int64) bool {
	i := c.IndexOf(id)
	if i < 0 {
		return false
	}
	c.Seminars = append(c.Seminars[:i], c.Seminars[i+1:]...)
	return true
}

// MarshalJSON keeps an empty collection as {"seminars": []}.
func (c Collection) MarshalJSON() ([]byte, error) {
	type alias Collection
	if c.Seminars == nil {
		c.Seminars = []*Seminar{}
	}
	return json.Marshal(alias(c))
}
