package pagestore

import (
	"context"
	"errors"
)

// Layered reads from each store in order and returns the first hit. Writes
// go to the first store. It lets a batch input shadow the configured store
// without copying pages into it.
type Layered []Store

// Get returns the page from the first store that has it. An error from one
// layer does not hide a hit in a later one.
func (l Layered) Get(ctx context.Context, title string) (Page, bool, error) {
	var errs []error
	for _, s := range l {
		p, ok, err := s.Get(ctx, title)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if ok {
			return p, true, nil
		}
	}
	return Page{}, false, errors.Join(errs...)
}

// Put writes to the first layer.
func (l Layered) Put(ctx context.Context, page Page) error {
	if len(l) == 0 {
		return errors.New("pagestore: no layers")
	}
	return l[0].Put(ctx, page)
}

// Close closes every layer.
func (l Layered) Close() error {
	var errs []error
	for _, s := range l {
		errs = append(errs, s.Close())
	}
	return errors.Join(errs...)
}
