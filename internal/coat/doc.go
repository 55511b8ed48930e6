// Package coat catalogs the predefined coat patterns and resolves the
// resident cats' coats by name.
//
// Integration example:
//
//	pattern, err := coat.ForCat("iggy")
//	if err != nil {
//		return err
//	}
//	out, err := render.New(profile).Render(drawing.Catto(), pattern)
//	if err != nil {
//		return err
//	}
//	fmt.Print(out)
package coat
