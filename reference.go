package ari

// Reference is an object path plus its optional actual parameters.
type Reference struct {
	Path   ObjPath
	Params Params
}

// NewReferenceValue builds a Reference from a path and parameters.
func NewReferenceValue(path ObjPath, params Params) Reference {
	return Reference{Path: path, Params: params}
}
