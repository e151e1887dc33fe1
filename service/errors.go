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


package service

import "errors"

var (
	// ErrCorpusRequired is returned when a corpus store is not provided.
	ErrCorpusRequired = errors.New("corpus store required")

	// ErrIndexRequired is returned when an embedding index is not provided.
	ErrIndexRequired = errors.New("embedding index required")

	// ErrGeneratorRequired is returned when an explanation generator is not provided.
	ErrGeneratorRequired = errors.New("explanation generator required")

	// ErrEmptyQuery indicates a blank query reached the service.
	// The API layer validates queries; this is the last line of defense.
	ErrEmptyQuery = errors.New("query cannot be empty")

	// ErrDatasetNotLoaded indicates statistics were requested before the
	// corpus was loaded.
	ErrDatasetNotLoaded = errors.New("dataset not loaded")
)
