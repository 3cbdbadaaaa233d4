package pymatch

import "fmt"

// BadlySpecifiedTemplate is raised when input text does not conform to a
// template at some placeholder (spec.md §7).
type BadlySpecifiedTemplate struct {
	msg string
}

func (e *BadlySpecifiedTemplate) Error() string { return e.msg }

func badTemplatef(format string, args ...interface{}) *BadlySpecifiedTemplate {
	return &BadlySpecifiedTemplate{msg: fmt.Sprintf(format, args...)}
}

func wrapBadTemplate(context string, err error) *BadlySpecifiedTemplate {
	return badTemplatef("%s:\n\n%v", context, err)
}

// ErrInvalidTemplate covers programmer errors in a declared template: two
// adjacent TextPlaceholders, a Field/ListField placeholder applied to the
// wrong field shape, or an stmt GetSource call lacking module context.
type ErrInvalidTemplate struct {
	msg string
}

func (e *ErrInvalidTemplate) Error() string { return e.msg }

func invalidTemplatef(format string, args ...interface{}) *ErrInvalidTemplate {
	return &ErrInvalidTemplate{msg: fmt.Sprintf(format, args...)}
}
