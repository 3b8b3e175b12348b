// Package tween runs gween tweens with callbacks and chains them one after
// the other.
package tween

import "github.com/tanema/gween"

// Action hooks into a running tween. Finished tweens start their nexts.
type Action struct {
	OnChange func(float32)
	onFinish []func()
	nexts    []chained
}

type chained struct {
	tween  *gween.Tween
	action *Action
}

func (a *Action) AddOnFinish(f func()) {
	a.onFinish = append(a.onFinish, f)
}

// Next queues t to start once a's tween is finished and returns its action.
func (a *Action) Next(t *gween.Tween) *Action {
	action := &Action{}
	a.nexts = append(a.nexts, chained{tween: t, action: action})
	return action
}

// Set holds the running tweens.
type Set map[*gween.Tween]*Action

// Add starts t. A nil action only runs the tween.
func (s Set) Add(t *gween.Tween, a *Action) *Action {
	if a == nil {
		a = &Action{}
	}
	s[t] = a
	return a
}

// Update advances every tween by dt seconds. Tweens chained to a finished
// one start on the next update.
func (s Set) Update(dt float32) {
	var started []chained
	for t, a := range s {
		curr, finished := t.Update(dt)
		if a.OnChange != nil {
			a.OnChange(curr)
		}
		if finished {
			for _, onFinish := range a.onFinish {
				onFinish()
			}
			started = append(started, a.nexts...)
			delete(s, t)
		}
	}
	for _, c := range started {
		s[c.tween] = c.action
	}
}
