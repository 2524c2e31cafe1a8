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

// Package cedict builds a JSON distribution of the CC-CEDICT dictionary.
//
// A build reads these sources:
//
//   - cedict_ts.u8: the CC-CEDICT dictionary.
//   - Unihan_Readings.txt: Cantonese, Mandarin and Tang readings and English
//     definitions of characters.
//   - Unihan_DictionaryLikeData.txt: character frequency and stroke counts.
//   - Unihan_IRGSources.txt: radical-stroke indexes of characters.
//
// Any source may be compressed with gzip (.gz) or dictzip (.dz). Only the
// CEDICT source is required.
//
// Dictionary entries whose traditional or simplified headword is a single
// character receive that character's Unihan properties. The entries are then
// split into JSON files of bounded size, e.g.
//
//	dist/cedict-v20240102-c001.json
//	dist/cedict-v20240102-c002.json
//
// Every file holds the distribution metadata, the dictionary header metadata
// and a contiguous run of entries.
package cedict
