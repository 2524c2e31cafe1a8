// Copyright 2025 Ian Lewis
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

// Package chunk splits dictionary entries into JSON documents of bounded
// size.
//
// Each entry is measured on its own and entries are packed greedily, in
// order, until the next one would bring the document to the size limit. Every
// document starts with the distribution metadata and the source dictionary
// metadata, whose sizes count towards the limit.
package chunk
