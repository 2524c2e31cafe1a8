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

// Package meta implements parsing of the CC-CEDICT header.
//
// The header is a block of comment lines at the top of cedict_ts.u8. Lines
// starting with "# " carry free text and lines starting with "#! " carry
// key=value pairs:
//
//	# CC-CEDICT
//	# Community maintained free Chinese-English dictionary.
//	...
//	#! version=1
//	#! subversion=0
//	#! format=ts
//	#! charset=UTF-8
//	#! entries=123456
//	#! publisher=MDBG
//	#! license=https://creativecommons.org/licenses/by-sa/4.0/
//	#! date=2024-01-02T03:04:05Z
//	#! time=1704164645
package meta
