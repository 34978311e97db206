// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

// Package tests holds helpers shared by the unit tests
package tests

import (
	"flag"
	"strconv"
	"sync"

	"k8s.io/klog/v2"
)

var initFlags sync.Once

// SetKlogV sets the logging verbosity when unit tests are run, so that
// verbose log statements are evaluated too
func SetKlogV(level int) {
	initFlags.Do(func() {
		if flag.Lookup("v") == nil {
			klog.InitFlags(nil)
		}
	})
	if f := flag.Lookup("v"); f != nil {
		_ = f.Value.Set(strconv.Itoa(level))
	}
	if f := flag.Lookup("logtostderr"); f != nil {
		_ = f.Value.Set("true")
	}
}
