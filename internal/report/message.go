// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
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
//
// SPDX-License-Identifier: Apache-2.0

package report

import (
	"fmt"
	"go/types"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/leakguard/internal/engine"
	"fillmore-labs.com/leakguard/internal/family"
)

// Message constructs the diagnostic message of a finding.
func Message(pkg *types.Package, f engine.Finding) string {
	site := f.Site

	return fmt.Sprintf("%s resource %s is never closed (lg:%s)", site.Family.Label(), site.TypeName(pkg), site.Family)
}

// related names the call the resource was handed to.
func related(info *types.Info, f engine.Finding) []analysis.RelatedInformation {
	h := f.Handoff
	if h == nil {
		return nil
	}

	var name string
	if call, ok := family.Resolve(info, h); ok {
		name = call.Name.String()
	} else {
		name = types.ExprString(h.Fun)
	}

	return []analysis.RelatedInformation{{
		Pos:     h.Pos(),
		End:     h.End(),
		Message: fmt.Sprintf("Passed to %s, which is not a known closing delegate", name),
	}}
}
