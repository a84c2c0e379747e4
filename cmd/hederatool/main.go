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

// hederatool is a small operator utility around the client library: generate
// keys and mnemonics, and validate entity ids against a ledger.
package main

import (
	"fmt"

	"github.com/hashgraph/hedera-client-go/app/crypto"
	"github.com/hashgraph/hedera-client-go/app/domain/types"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
)

func main() {
	generate := pflag.String("generate", "", "Generate a private key, ed25519 or ecdsa")
	mnemonic := pflag.Int("mnemonic", 0, "Generate a mnemonic of 12 or 24 words")
	validate := pflag.String("validate", "", "Validate an entity id, with checksum if present")
	network := pflag.String("network", "mainnet", "Ledger to validate checksums against")
	pflag.Parse()

	switch {
	case *generate != "":
		generateKey(*generate)
	case *mnemonic != 0:
		generateMnemonic(*mnemonic)
	case *validate != "":
		validateEntityId(*validate, *network)
	default:
		pflag.Usage()
	}
}

func generateKey(algorithm string) {
	var key crypto.PrivateKey
	var err error

	switch algorithm {
	case "ed25519":
		key, err = crypto.GenerateEd25519PrivateKey()
	case "ecdsa":
		key, err = crypto.GenerateEcdsaPrivateKey()
	default:
		log.Fatalf("Unknown algorithm %s, expected ed25519 or ecdsa", algorithm)
	}
	if err != nil {
		log.Fatalf("Failed to generate key: %s", err)
	}

	fmt.Printf("private: %s\n", key)
	fmt.Printf("public:  %s\n", key.PublicKey())
}

func generateMnemonic(words int) {
	var mnemonic crypto.Mnemonic
	var err error

	switch words {
	case 12:
		mnemonic, err = crypto.GenerateMnemonic12()
	case 24:
		mnemonic, err = crypto.GenerateMnemonic24()
	default:
		log.Fatalf("Unsupported word count %d, expected 12 or 24", words)
	}
	if err != nil {
		log.Fatalf("Failed to generate mnemonic: %s", err)
	}

	key, err := mnemonic.ToPrivateKey("")
	if err != nil {
		log.Fatalf("Failed to derive key: %s", err)
	}

	fmt.Printf("mnemonic: %s\n", mnemonic)
	fmt.Printf("private:  %s\n", key)
	fmt.Printf("public:   %s\n", key.PublicKey())
}

func validateEntityId(value, network string) {
	ledgerId, err := types.LedgerIdFromString(network)
	if err != nil {
		log.Fatalf("Unknown network %s: %s", network, err)
	}

	entityId, err := types.EntityIdFromString(value)
	if err != nil {
		log.Fatalf("Invalid entity id %s: %s", value, err)
	}

	if _, ok := entityId.Checksum(); ok {
		if err := entityId.ValidateChecksum(ledgerId); err != nil {
			log.Fatalf("Checksum validation failed: %s", err)
		}
	}

	fmt.Println(entityId.ToStringWithChecksum(ledgerId))
}
