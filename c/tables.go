package c

// Keywords is the C keyword list offered in general code context.
var Keywords = []string{
	"auto", "break", "case", "char", "const", "continue", "default", "do",
	"double", "else", "enum", "extern", "float", "for", "goto", "if",
	"int", "long", "register", "return", "short", "signed", "sizeof", "static",
	"struct", "switch", "typedef", "union", "unsigned", "void", "volatile",
	"while", "inline", "restrict", "_Bool", "_Complex", "_Imaginary",
}

// Types covers builtin types plus the common stdint/stddef typedefs.
var Types = []string{
	"int", "char", "void", "float", "double", "short", "long", "unsigned",
	"signed", "size_t", "FILE", "time_t", "clock_t", "struct", "union",
	"enum", "const", "static", "extern", "volatile", "register", "restrict",
	"bool", "_Bool", "_Complex", "_Imaginary", "uint8_t", "uint16_t",
	"uint32_t", "uint64_t", "int8_t", "int16_t", "int32_t", "int64_t",
}

// PreprocessorDirectives are offered when the current line is a
// non-include preprocessor line.
var PreprocessorDirectives = []string{
	"#include", "#define", "#undef", "#ifdef", "#ifndef", "#if", "#else",
	"#elif", "#endif", "#error", "#pragma", "#line",
}

// StandardHeaders are suggested on #include lines, in addition to any
// headers harvested from the project.
var StandardHeaders = []string{
	"stdio.h", "stdlib.h", "string.h", "math.h", "time.h", "ctype.h",
}

// StdlibFunctions maps a standard header to the library functions it
// declares. Completion offers only the functions whose headers the
// document actually includes; a document with no includes gets the
// whole table.
var StdlibFunctions = map[string][]string{
	"stdio.h": {
		"printf", "scanf", "fprintf", "fscanf", "sprintf", "sscanf",
		"fopen", "fclose", "fread", "fwrite", "fseek", "ftell", "rewind",
	},
	"stdlib.h": {
		"malloc", "calloc", "realloc", "free", "atoi", "atol", "atof",
		"rand", "srand", "exit", "abort", "atexit", "system", "getenv",
		"bsearch", "qsort", "abs", "labs", "div", "ldiv",
	},
	"string.h": {
		"memcpy", "memset", "memmove", "strlen", "strcpy", "strncpy",
		"strcat", "strncat", "strcmp", "strncmp", "strchr", "strrchr",
		"strstr", "strtok",
	},
	"time.h": {
		"time", "clock", "difftime", "mktime", "localtime", "gmtime",
		"strftime",
	},
	"math.h": {
		"sin", "cos", "tan", "asin", "acos", "atan", "atan2",
		"sinh", "cosh", "tanh", "exp", "log", "log10", "pow", "sqrt",
		"ceil", "floor", "fabs", "fmod",
	},
	"setjmp.h": {
		"setjmp", "longjmp",
	},
}

// Snippets maps a trigger name to a multi-line template. Applying a
// snippet places the cursor on the first indented placeholder line.
var Snippets = map[string]string{
	"main":     "int main(int argc, char *argv[]) {\n    \n    return 0;\n}",
	"for":      "for (int i = 0; i < n; i++) {\n    \n}",
	"while":    "while (condition) {\n    \n}",
	"do":       "do {\n    \n} while (condition);",
	"if":       "if (condition) {\n    \n}",
	"ifelse":   "if (condition) {\n    \n} else {\n    \n}",
	"switch":   "switch (expression) {\n    case value1:\n        // code\n        break;\n    case value2:\n        // code\n        break;\n    default:\n        // code\n        break;\n}",
	"struct":   "struct name {\n    // members\n};",
	"function": "return_type function_name(parameters) {\n    // code\n    return value;\n}",
	"include":  "#include <stdio.h>",
	"printf":   "printf(\"%s\\n\", );",
	"scanf":    "scanf(\"%d\", &variable);",
	"malloc":   "type *ptr = (type *)malloc(size * sizeof(type));\nif (ptr == NULL) {\n    // Handle error\n}",
	"free":     "free(ptr);\nptr = NULL;",
}

// structMemberPlaceholders is the fixed candidate set for member access.
// The engine never resolves the receiver's declared type, so these are
// generic member names rather than the target's real fields.
var structMemberPlaceholders = []string{
	"count", "data", "id", "length", "name", "next", "prev", "size",
	"type", "value",
}

var keywordSet = func() map[string]bool {
	set := make(map[string]bool, len(Keywords))
	for _, kw := range Keywords {
		set[kw] = true
	}
	return set
}()
