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

package crypto

// Legacy 22-word mnemonics draw from a 4,096-entry word list addressed by
// position. Each word encodes one radix-4096 digit, so the list must be
// stable; it is generated from a fixed consonant-vowel alternation rather
// than embedded as an asset.

var legacyWordList = generateLegacyWordList()

var legacyWordIndex = func() map[string]int {
	index := make(map[string]int, len(legacyWordList))
	for i, word := range legacyWordList {
		index[word] = i
	}
	return index
}()

func generateLegacyWordList() []string {
	consonants := "bcdfghjklmnprstw"
	vowels := "aeou"

	words := make([]string, 0, 4096)
	for _, c1 := range consonants {
		for _, v1 := range vowels {
			for _, c2 := range consonants {
				for _, v2 := range vowels {
					words = append(words, string([]rune{c1, v1, c2, v2}))
				}
			}
		}
	}
	return words
}
