// Copyright 2018 The Jadep Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package future implements future/promise primitives that memoize work
// done only once, even when several goroutines ask for the result
// concurrently.
package future

// Value is a future/promise for a (value, error) pair. Unlike a plain
// promise, Get also returns an error, since everything this module
// computes lazily (reading a .class file, listing a jar) can fail.
type Value struct {
	value interface{}
	err   error

	// ready is a broadcast channel: closing it wakes every blocked Get.
	ready chan struct{}
}

// NewValue returns a new Value whose result is computed by f. f runs in
// its own goroutine; NewValue itself never blocks.
func NewValue(f func() (interface{}, error)) *Value {
	v := &Value{ready: make(chan struct{})}
	go func() {
		v.value, v.err = f()
		close(v.ready)
	}()
	return v
}

// Get blocks until the value is ready and returns it, or the error f
// returned. Every caller of Get sees the same result; f runs exactly
// once regardless of how many goroutines call Get.
func (v *Value) Get() (interface{}, error) {
	<-v.ready
	return v.value, v.err
}

// Immediate returns a Value already resolved to (value, nil).
func Immediate(value interface{}) *Value {
	return NewValue(func() (interface{}, error) { return value, nil })
}

// Failed returns a Value already resolved to (nil, err).
func Failed(err error) *Value {
	return NewValue(func() (interface{}, error) { return nil, err })
}
