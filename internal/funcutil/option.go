// Copyright the Vigil contributors. All Rights Reserved.
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

package funcutil

import "fmt"

// An Optional holds a value of type T or nothing. The zero value is none.
type Optional[T any] struct {
	value T
	ok    bool
}

// Some returns an optional holding x.
func Some[T any](x T) Optional[T] {
	return Optional[T]{value: x, ok: true}
}

// None returns the empty optional.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// IsSome returns true if the optional holds a value.
func (o Optional[T]) IsSome() bool { return o.ok }

// IsNone returns true if the optional is empty.
func (o Optional[T]) IsNone() bool { return !o.ok }

// Value returns the held value, or panics if the optional is empty.
func (o Optional[T]) Value() T {
	if !o.ok {
		panic("funcutil: Value called on empty Optional")
	}
	return o.value
}

// ValueOr returns the held value, or defaultVal if the optional is empty.
func (o Optional[T]) ValueOr(defaultVal T) T {
	if !o.ok {
		return defaultVal
	}
	return o.value
}

// Or returns o if it holds a value, otherwise other.
func (o Optional[T]) Or(other Optional[T]) Optional[T] {
	if o.ok {
		return o
	}
	return other
}

func (o Optional[T]) String() string {
	if !o.ok {
		return "none"
	}
	return fmt.Sprintf("%v", o.value)
}
