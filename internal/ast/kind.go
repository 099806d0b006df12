// Copyright 2018 The Jadep Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package ast provides a language-specific (Java 5) abstract syntax tree
// that the semantic core walks. The tree itself is assembled from the
// range events a lexer/parser reports (see Builder); this package owns no
// lexer or parser of its own.
package ast

import "fmt"

// Kind is the set of all AST node kinds the Java grammar can produce.
//
// WARNING: do not change numeric assignments of the kinds below; source
// locations and cached trees are keyed by them.
type Kind int16

// Selector reports whether a given Kind belongs to some set of kinds.
type Selector func(k Kind) bool

// Any is a Selector that always returns true.
func Any(Kind) bool { return true }

// Kinds shared by every language a parser might produce.
const (
	NoKind        Kind = 0
	BrokenFile    Kind = 1
	SyntaxProblem Kind = 2
	InvalidToken  Kind = 3
	Keyword       Kind = 4
	Punctuation   Kind = 5
)

// Java node kinds, one per nonterminal (or significant terminal) of the
// Java 5 grammar.
const (
	JavaFile               Kind = 64
	JavaIdentifier         Kind = 65 // a.foo
	JavaTraditionalComment Kind = 66 // /* bb */ (including doc comments)
	JavaEndOfLineComment   Kind = 67 // // aaa

	JavaPackage               Kind = 68 // package com.test;
	JavaImport                Kind = 69 // import a.b.c;
	JavaStatic                Kind = 70 // import |static| A.b;
	JavaName                  Kind = 71 // import |a.b.Cde|;
	JavaNameStar              Kind = 72 // import |a.b.Cde.*|;
	JavaEmptyDecl             Kind = 73 // ;
	JavaClass                 Kind = 74 // class A {}
	JavaEnum                  Kind = 75 // enum Kind {}
	JavaInterface             Kind = 76 // interface Reader {}
	JavaAnnotationType        Kind = 77 // public @interface Test { .. }
	JavaAnnotationTypeElement Kind = 78 //    public boolean enabled() default true;

	JavaExtends             Kind = 79  // class A |extends B| {}
	JavaImplements          Kind = 80  // class D |implements E| {}
	JavaBody                Kind = 81  // class A |{}|
	JavaField               Kind = 82  // private int i = 1;
	JavaVarDecl             Kind = 83  //             i = 1
	JavaMethod              Kind = 84  // public static void main(String[] args) {}
	JavaFormalParameters    Kind = 85  //                        (String[] args)
	JavaFormalParameter     Kind = 86  //                         String[] args
	JavaMethodGenericClause Kind = 189 // public |<T>| T[] getTs();
	JavaVariadic            Kind = 190 // void foo(String |...|rest)
	JavaReceiverParameter   Kind = 87  // void m2(Test this) { }
	JavaThrows              Kind = 88  // int a() |throws IOException| {}
	JavaNoBody              Kind = 89  // class A { abstract int a()|;| }
	JavaEnumConstant        Kind = 90  // enum I { |PUBLIC("public") { ... }| ... }
	JavaInstanceInitializer Kind = 91  // class A { |{}| }
	JavaStaticInitializer   Kind = 92  // class A { |static {}| }
	JavaConstructor         Kind = 93  // class A { |A() {}| }
	JavaIdentifierName      Kind = 94  // class |A| {}
	JavaDefaultValue        Kind = 95  // public boolean enabled() |default true|;
	JavaInitializerExpr     Kind = 96  // int i = |5+2|;
	JavaArrayInitializer    Kind = 97  // byte[] bytes = |{1,2,3}|;

	JavaModifierKeyword  Kind = 98  // public, final
	JavaAnnotation       Kind = 99  // @Nullable
	JavaElementValuePair Kind = 100 // @Foo(|value = "/aaa"|)
	JavaElementValue     Kind = 101 // @Foo(|"/aaa"|)
	JavaLiteral          Kind = 102 // 1, "abc", '\n', 1e9, 0xabc, 123_456

	JavaVoidType       Kind = 103 // void
	JavaPrimitiveType  Kind = 104 // int, long, boolean
	JavaClassType      Kind = 105 // A, java.util.List<Integer>
	JavaClassTypeMods  Kind = 188 // extends Foo {}
	JavaArrayType      Kind = 106 // A[], int[]
	JavaTypeParameters Kind = 107 // class A<|T extends A & B|> {}
	JavaTypeParameter  Kind = 108 //          T extends A & B
	JavaTypeBound      Kind = 109 //            extends A & B
	JavaTypeArguments  Kind = 110 // Map|<String, List<String>>|
	JavaTypeArgument   Kind = 111 // Map<|? extends String|, B>
	JavaBoundType      Kind = 112 //        extends

	JavaBlock                 Kind = 113 // { foo(); }
	JavaLocalVars             Kind = 114 // final int a = 5, b = 7;
	JavaEmptyStatement        Kind = 115 // ;
	JavaLabeled               Kind = 116 // label: for (...) {}
	JavaExpressionStatement   Kind = 117 // |a--;|
	JavaIf                    Kind = 118 // if (true) { } else { }
	JavaAssert                Kind = 119 // assert a == 5;
	JavaSwitch                Kind = 120 // switch (a) { case 1: break; }
	JavaSwitchBlock           Kind = 121 // switch (a) |{ case 1: break; }|
	JavaCase                  Kind = 122 //              case 1:
	JavaDefaultCase           Kind = 123 // switch (a) { |default:| break; }
	JavaWhile                 Kind = 124 // while (true) { .. }
	JavaDoWhile               Kind = 125 // do retry = run(); while(retry);
	JavaBasicFor              Kind = 126 // for (int i = 0; i < arr.length; i++) { }
	JavaForInit               Kind = 127 //      int i = 0
	JavaForUpdate             Kind = 128 //                                 i++
	JavaEnhFor                Kind = 129 // for (A a : listOfA) { }
	JavaBreak                 Kind = 130 // break;
	JavaContinue              Kind = 131 // continue A;
	JavaReturn                Kind = 132 // return 1;
	JavaThrow                 Kind = 133 // throw new IOException("failure");
	JavaSynchronized          Kind = 134 // synchronized (a) { .. }
	JavaTryStatement          Kind = 135 // try { } finally { } catch (IOException e) { .. }
	JavaFinally               Kind = 136 //         finally { }
	JavaCatch                 Kind = 137 //                     catch (IOException e) { .. }
	JavaCatchParameter        Kind = 138 //                            IOException e
	JavaResourceSpecification Kind = 139 // try |(InputStream in = open(); )| { }
	JavaResource              Kind = 140 //       InputStream in = open()

	JavaMethodName       Kind = 141 // this.|aa|(foo, bar)
	JavaArgs             Kind = 187 //         |(foo, bar)|
	JavaThisCall         Kind = 142
	JavaSuperCall        Kind = 143
	JavaThis             Kind = 144 // this
	JavaParenthesized    Kind = 145
	JavaClassLiteral     Kind = 146
	JavaQualifiedNew     Kind = 147
	JavaNew              Kind = 148
	JavaFieldAccess      Kind = 149
	JavaArrayAccess      Kind = 150
	JavaMethodInvocation Kind = 151
	JavaSuperRef         Kind = 152
	JavaMethodReference  Kind = 153
	JavaNewArray         Kind = 154
	JavaDimExpr          Kind = 155
	JavaCastExpression   Kind = 156
	JavaLambda           Kind = 157
	JavaLambdaParameters Kind = 158
	JavaAssignment       Kind = 159
	JavaAssignmentOp     Kind = 160
	JavaTernary          Kind = 161
	JavaOr               Kind = 162
	JavaAnd              Kind = 163
	JavaBitOr            Kind = 164
	JavaBitXor           Kind = 165
	JavaBitAnd           Kind = 166
	JavaEquality         Kind = 167
	JavaInequality       Kind = 168
	JavaRelational       Kind = 169
	JavaInstanceOf       Kind = 170
	JavaShift            Kind = 171
	JavaAdditive         Kind = 172
	JavaMultiplicative   Kind = 173
	JavaUnary            Kind = 174
	JavaPreInc           Kind = 175
	JavaPreDec           Kind = 176
	JavaPostInc          Kind = 177
	JavaPostDec          Kind = 178

	JavaTypeName       Kind = 179
	JavaExprName       Kind = 180
	JavaDim            Kind = 181
	JavaTypeOrExprName Kind = 182

	JavaModuleDeclaration Kind = 183
	JavaModuleName        Kind = 184
	JavaPackageName       Kind = 185
	JavaModuleDirective   Kind = 186

	JavaNodeMax Kind = 191
)

var kindName = map[Kind]string{
	BrokenFile:    "BrokenFile",
	SyntaxProblem: "SyntaxProblem",
	InvalidToken:  "InvalidToken",
	Keyword:       "Keyword",
	Punctuation:   "Punctuation",
}

func (k Kind) String() string {
	if name, ok := kindName[k]; ok {
		return name
	}
	return fmt.Sprintf("Unknown(%d)", k)
}

// OneOf constructs a selector matching any of the given kinds.
func OneOf(kinds ...Kind) Selector {
	if len(kinds) == 0 {
		return func(Kind) bool { return false }
	}
	var max uint
	for _, k := range kinds {
		if uint(k) > max {
			max = uint(k)
		}
	}
	const bits = 32
	size := 1 + max/bits
	bitarr := make([]int32, size)
	for _, k := range kinds {
		bitarr[uint(k)/bits] |= 1 << (uint(k) % bits)
	}
	return func(k Kind) bool {
		i := uint(k)
		return i <= max && bitarr[i/bits]&(1<<(i%bits)) != 0
	}
}
