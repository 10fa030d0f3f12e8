// Command translate resolves aliases in translation files and looks up keys
// from the command line.
//
//	translate aliases locales/en.yaml --out yaml
//	translate lookup locales/pl.json files --count 3 --plural pl
//	translate lookup locales/en.yaml greeting --set name=Ann
package main

func main() {
	Execute()
}
