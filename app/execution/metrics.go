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

package execution

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	attemptsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "hedera",
		Subsystem: "client",
		Name:      "attempts_total",
		Help:      "Submission attempts by outcome classification",
	}, []string{"outcome"})

	nodeUnhealthyTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "hedera",
		Subsystem: "client",
		Name:      "node_unhealthy_total",
		Help:      "Times a node was taken out of rotation",
	})
)
