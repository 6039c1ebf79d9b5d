// This file is part of Gopherdol.
//
// Gopherdol is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopherdol is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopherdol.  If not, see <https://www.gnu.org/licenses/>.

package prefs

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
)

// Value is the underlying Go value of a preference.
type Value interface{}

// types supported by the prefs system must implement the pref interface.
type pref interface {
	fmt.Stringer
	Set(value Value) error
	Get() Value
	Reset() error
}

// hooks gives a prefs type the optional pre and post update callbacks. the
// zero value means no callbacks.
type hooks struct {
	pre  func(value Value) error
	post func(value Value) error
}

// SetHookPre registers the function to be called just before a new value is
// stored. An error returned by the hook abandons the update.
//
// The hook is called on every Set(), even when the new value is the same as
// the old value.
func (h *hooks) SetHookPre(f func(value Value) error) {
	h.pre = f
}

// SetHookPost registers the function to be called just after a new value has
// been stored.
//
// The hook is called on every Set(), even when the new value is the same as
// the old value.
func (h *hooks) SetHookPost(f func(value Value) error) {
	h.post = f
}

// update stores the new value, bracketed by the pre and post hooks.
func (h *hooks) update(target *atomic.Value, v Value) error {
	if h.pre != nil {
		if err := h.pre(v); err != nil {
			return err
		}
	}

	target.Store(v)

	if h.post != nil {
		if err := h.post(v); err != nil {
			return err
		}
	}

	return nil
}

// Bool implements a boolean type in the prefs system. The zero value is ready
// to use and reads as false.
type Bool struct {
	pref
	hooks
	value atomic.Value // bool
}

func (p *Bool) String() string {
	return fmt.Sprintf("%v", p.Get())
}

// Set the boolean value. The new value may be a bool or a string. A string
// means true if it equals "true", case insensitively, and false otherwise.
func (p *Bool) Set(v Value) error {
	switch v := v.(type) {
	case bool:
		return p.update(&p.value, v)
	case string:
		return p.update(&p.value, strings.EqualFold(v, "true"))
	}
	return fmt.Errorf("set: cannot convert %T to prefs.Bool", v)
}

// Get returns the stored value.
func (p *Bool) Get() Value {
	if v, ok := p.value.Load().(bool); ok {
		return v
	}
	return false
}

// Reset sets the boolean value to false.
func (p *Bool) Reset() error {
	return p.Set(false)
}

// String implements a string type in the prefs system. The zero value is
// ready to use and reads as the empty string.
type String struct {
	pref
	hooks
	value  atomic.Value // string
	maxLen int
}

func (p *String) String() string {
	if v, ok := p.value.Load().(string); ok {
		return v
	}
	return ""
}

// SetMaxLen limits the length of the stored string. A limit of zero or less
// means no limit. The current value is cropped immediately if it is too long
// and the cropped information is lost.
func (p *String) SetMaxLen(max int) {
	p.maxLen = max

	if v, ok := p.value.Load().(string); ok {
		if p.maxLen > 0 && len(v) > p.maxLen {
			p.value.Store(v[:p.maxLen])
		}
	}
}

// Set new value to String type. Values of any type are accepted and converted
// to a string as necessary. The result is cropped to the maximum length.
func (p *String) Set(v Value) error {
	nv := fmt.Sprintf("%s", v)
	if p.maxLen > 0 && len(nv) > p.maxLen {
		nv = nv[:p.maxLen]
	}
	return p.update(&p.value, nv)
}

// Get returns the stored value.
func (p *String) Get() Value {
	return p.String()
}

// Reset sets the string value to the empty string.
func (p *String) Reset() error {
	return p.Set("")
}

// Int implements an integer type in the prefs system. The zero value is ready
// to use and reads as zero.
type Int struct {
	pref
	hooks
	value atomic.Value // int
}

func (p *Int) String() string {
	return fmt.Sprintf("%d", p.Get())
}

// Set new value to Int type. New value can be an int or a string. Floating
// point values are not accepted.
func (p *Int) Set(v Value) error {
	var nv int

	switch v := v.(type) {
	case int:
		nv = v
	case int32:
		nv = int(v)
	case int64:
		nv = int(v)
	case string:
		var err error
		nv, err = strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("set: cannot convert %T to prefs.Int: %w", v, err)
		}
	default:
		return fmt.Errorf("set: cannot convert %T to prefs.Int", v)
	}

	return p.update(&p.value, nv)
}

// Get returns the stored value.
func (p *Int) Get() Value {
	if v, ok := p.value.Load().(int); ok {
		return v
	}
	return 0
}

// Reset sets the int value to zero.
func (p *Int) Reset() error {
	return p.Set(0)
}

// Generic is a general purpose preferences type, useful for values that
// cannot be represented by a single live value. The value is defined entirely
// by the set and get functions supplied to NewGeneric().
//
// The Generic prefs type does not support the pre and post update hooks. The
// set function can perform whatever work is required. It is also slower than
// the other prefs types because it must protect the set and get functions
// with a mutex.
type Generic struct {
	pref
	crit sync.Mutex
	set  func(Value) error
	get  func() Value
}

// NewGeneric is the preferred method of initialisation for the Generic type.
func NewGeneric(set func(Value) error, get func() Value) *Generic {
	return &Generic{
		set: set,
		get: get,
	}
}

func (p *Generic) String() string {
	return fmt.Sprintf("%v", p.Get())
}

// Set forwards the new value to the set function.
func (p *Generic) Set(v Value) error {
	p.crit.Lock()
	defer p.crit.Unlock()
	return p.set(v)
}

// Get returns the value reported by the get function.
func (p *Generic) Get() Value {
	p.crit.Lock()
	defer p.crit.Unlock()
	return p.get()
}

// Reset sets the generic value to the empty string.
func (p *Generic) Reset() error {
	return p.Set("")
}
