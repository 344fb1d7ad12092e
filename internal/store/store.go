// Package store is not safe for concurrent use. Dispatch may be called
// re-entrantly from a subscriber, so it takes no lock.
package store

import (
	"github.com/sandeepkv93/tasklist/internal/intent"
	"github.com/sandeepkv93/tasklist/internal/model"
	"github.com/sandeepkv93/tasklist/internal/reducer"
)

type Hook func(prev, next model.State, in intent.Intent)

type Option func(*Store)

func WithHook(h Hook) Option {
	return func(s *Store) {
		if h != nil {
			s.hooks = append(s.hooks, h)
		}
	}
}

type subscription struct {
	id     uint64
	notify func()
}

type Store struct {
	reduce      reducer.Func
	state       model.State
	hooks       []Hook
	subscribers []subscription
	nextSubID   uint64
	dispatches  uint64
}

func New(reduce reducer.Func, initial model.State, opts ...Option) *Store {
	if reduce == nil {
		reduce = reducer.Root
	}
	if initial.Filter == "" {
		initial.Filter = model.FilterShowAll
	}
	s := &Store{reduce: reduce, state: initial}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func NewDefault(opts ...Option) *Store {
	return New(reducer.Root, model.InitialState(), opts...)
}

func (s *Store) GetState() model.State {
	return s.state.Clone()
}

func (s *Store) Dispatch(in intent.Intent) {
	prev := s.state
	s.state = s.reduce(prev, in)
	s.dispatches++
	for _, h := range s.hooks {
		h(prev, s.state, in)
	}
	subs := make([]subscription, len(s.subscribers))
	copy(subs, s.subscribers)
	for _, sub := range subs {
		sub.notify()
	}
}

func (s *Store) Subscribe(fn func()) (unsubscribe func()) {
	if fn == nil {
		return func() {}
	}
	s.nextSubID++
	id := s.nextSubID
	s.subscribers = append(s.subscribers, subscription{id: id, notify: fn})
	return func() {
		for i, sub := range s.subscribers {
			if sub.id == id {
				s.subscribers = append(s.subscribers[:i:i], s.subscribers[i+1:]...)
				return
			}
		}
	}
}

func (s *Store) Dispatches() uint64 {
	return s.dispatches
}

func (s *Store) SubscriberCount() int {
	return len(s.subscribers)
}
