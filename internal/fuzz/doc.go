// Package fuzztests houses Go fuzz harnesses for the name script pipeline
// (source -> lexer -> parser -> evaluator). They smoke test robustness and
// guard against panics or hangs on arbitrary inputs.
//
// Назначение: загружать байты в FileSet и прогонять их через лексер, парсер
// и вычислитель имён.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
//
// Зависимости: internal/source, internal/script, internal/astctx,
// internal/diag, internal/testkit.

package fuzztests
