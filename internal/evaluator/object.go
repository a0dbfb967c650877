package evaluator

type ObjectType string

const (
	NIL_OBJ      = "NIL"
	BOOLEAN_OBJ  = "BOOLEAN"
	NUMBER_OBJ   = "NUMBER"
	STRING_OBJ   = "STRING"
	FUNCTION_OBJ = "FUNCTION"
	BUILTIN_OBJ  = "BUILTIN"
	CLASS_OBJ    = "CLASS"
	INSTANCE_OBJ = "INSTANCE"
)

// Object is a runtime value. The set of implementations is closed: Nil,
// Boolean, Number, String, Builtin, Function, Class and Instance.
type Object interface {
	Type() ObjectType
	// Inspect returns the text 'print' writes for the value.
	Inspect() string
}

// Callable is implemented by Builtin, Function and Class.
type Callable interface {
	Object
	Arity() int
	// Call runs the callable. The caller has already checked len(args)
	// against Arity.
	Call(in *Interpreter, args []Object) (Object, error)
}
