package extractor

import "github.com/toyz/routedoc/internal/models"

// FindInterfaceMethod searches interfaces depth-first for a method with the
// same name and signature as method. Each interface's own methods are checked
// before its super-interfaces, and those before the next sibling.
func FindInterfaceMethod(interfaces []models.ClassDoc, method models.MethodDoc) (models.MethodDoc, bool) {
	for _, intf := range interfaces {
		for _, candidate := range intf.GetMethods() {
			if candidate.GetName() == method.GetName() && candidate.GetSignature() == method.GetSignature() {
				return candidate, true
			}
		}
		if found, ok := FindInterfaceMethod(intf.GetInterfaces(), method); ok {
			return found, true
		}
	}
	return nil, false
}
