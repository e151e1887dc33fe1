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


// Package service orchestrates founder retrieval.
//
// The Service type wires the corpus store, embedding index, field matcher,
// explanation generator, and statistics aggregator behind the operations an
// API layer consumes: Search, GetFounder, Stats, and readiness checks.
//
// Queries are stateless with respect to shared state; the corpus and index
// are read-only after initialization, so concurrent searches need no
// synchronization.
package service
