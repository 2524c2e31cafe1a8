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

// Package unihan implements reading Unihan database property files.
//
// Each data line in a Unihan file has three tab separated parts:
//  1. The code point of the character in "U+XXXX" notation.
//  2. The property name, e.g. "kMandarin".
//  3. The property value.
//
// Lines are sorted by code point so all properties of a character are
// contiguous.
package unihan
