// SPDX-License-Identifier: MPL-2.0

package modality_test

import (
	"errors"
	"fmt"

	"github.com/modalities/modalities/pkg/modality"
)

func ExampleSet_Contains() {
	combo := modality.Audio | modality.Text
	fmt.Println(combo.Contains(modality.Audio))
	fmt.Println(combo.Contains(modality.Image))
	fmt.Println(combo.Contains(modality.Audio | modality.Image))
	// Output:
	// true
	// false
	// false
}

func ExampleFromNames() {
	s, err := modality.FromNames([]string{"video", "audio"})
	if err != nil {
		panic(err)
	}
	fmt.Println(s.Names())
	fmt.Println(s)

	_, err = modality.FromNames([]string{"audio", "bogus"})
	var nameErr *modality.InvalidNameError
	if errors.As(err, &nameErr) {
		fmt.Println("bad name:", nameErr.Name)
	}
	// Output:
	// [audio video]
	// audio | video
	// bad name: bogus
}

func ExampleSet_String() {
	fmt.Println(modality.None)
	fmt.Println(modality.All)
	// Output:
	// none
	// audio | image | text | video | other
}
