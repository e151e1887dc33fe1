// Copyright 2025 Scoutbase Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package core

import "errors"

// Domain validation errors
var (
	// ErrInvalidRecord indicates a Record failed validation.
	ErrInvalidRecord = errors.New("invalid record")

	// ErrEmptyID indicates the record ID field is empty.
	ErrEmptyID = errors.New("record id cannot be empty")

	// ErrEmptyName indicates the record Name field is empty.
	ErrEmptyName = errors.New("record name cannot be empty")

	// ErrNotFound indicates a record lookup found no match.
	// This is a normal, expected outcome, distinct from failures.
	ErrNotFound = errors.New("record not found")
)
