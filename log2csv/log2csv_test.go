/*
Copyright 2019 Google Inc. All Rights Reserved.
Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package main

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestHeaderRE(t *testing.T) {
	m := headerRE.FindStringSubmatch("I0824 12:34:56.789012  1234 statslog.go:99] outcome(count)[time min,max,avg]:")
	if m == nil {
		t.Fatal("headerRE did not match a stats block header")
	}
	if want := []string{"08", "24", "12:34:56.789012"}; !cmp.Equal(m[1:], want) {
		t.Errorf("header groups = %v, want %v", m[1:], want)
	}
	if headerRE.MatchString("I0824 12:34:56.789012  1234 worker.go:50] Worker 3 started") {
		t.Error("headerRE matched an unrelated log line")
	}
}

func TestParseSampleLine(t *testing.T) {
	header := []string{"08", "24", "12:34:56.789012"}
	tests := []struct {
		desc   string
		header []string
		line   string
		want   []string
	}{
		{
			"Outcome sample",
			header,
			"\tsuccess(5)[0s,4ms,2ms]",
			[]string{"08", "24", "12:34:56.789012", "success", "5", "0s", "4ms", "2ms"},
		},
		{
			"Failure sample",
			header,
			"\tnot_found(3)[5ms,9ms,7ms]",
			[]string{"08", "24", "12:34:56.789012", "not_found", "3", "5ms", "9ms", "7ms"},
		},
		{"No header seen yet", nil, "\tsuccess(5)[0s,4ms,2ms]", nil},
		{"Unrelated line", header, "I0824 12:35:00.000000  1234 worker.go:50] Worker 3 exiting", nil},
	}
	for _, tc := range tests {
		if got := parseSampleLine(tc.header, tc.line); !cmp.Equal(got, tc.want) {
			t.Errorf("%s: parseSampleLine = %v, want %v", tc.desc, got, tc.want)
		}
	}
}
