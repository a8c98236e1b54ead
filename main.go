// SPDX-License-Identifier: MPL-2.0

package main

import cmd "github.com/modalities/modalities/cmd/modality"

func main() {
	cmd.Execute()
}
