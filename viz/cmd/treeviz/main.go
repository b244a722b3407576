// Command treeviz builds random binary search trees and plays back
// their traversals in the terminal.
//
//	treeviz build --values 50,30,70,20,40
//	treeviz traverse --count-max 15 --seed 3
//	treeviz animate --order post --speed 800
package main

func main() {
	Execute()
}
