// Code generated by hand. DO NOT EDIT.

package generated

import "os"

func leak(name string) {
	os.Open(name)
}
