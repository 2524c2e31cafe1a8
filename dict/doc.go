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

// Package dict implements parsing of CC-CEDICT dictionary lines.
//
// Each data line has the form:
//
//	TRADITIONAL SIMPLIFIED [PINYIN] /DEFINITION 1/DEFINITION 2/.../
//
// Definitions may contain classifiers in the form "CL:個|个[ge4],位[wei4]".
// When a classifier is followed by further definitions the line lists
// several senses (homonyms) and is split into one entry per sense.
//
// Headwords containing a middle dot ('·') are compound names and are split
// into first and last names. Headwords containing a full-width comma ('，')
// are proverbs.
package dict
