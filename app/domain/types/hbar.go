/*
 * Copyright (C) 2019-2025 Hedera Hashgraph, LLC
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package types

import "fmt"

const TinybarPerHbar int64 = 100_000_000

// Hbar is an amount of the network currency, held in tinybar
type Hbar struct {
	tinybar int64
}

func HbarFromTinybar(tinybar int64) Hbar {
	return Hbar{tinybar: tinybar}
}

func NewHbar(hbar int64) Hbar {
	return Hbar{tinybar: hbar * TinybarPerHbar}
}

func (h Hbar) Tinybar() int64 {
	return h.tinybar
}

func (h Hbar) String() string {
	if h.tinybar%TinybarPerHbar == 0 {
		return fmt.Sprintf("%d ℏ", h.tinybar/TinybarPerHbar)
	}
	return fmt.Sprintf("%d tℏ", h.tinybar)
}
