// Package fuzztests houses Go fuzz harnesses for the lexical front end
// (source -> lexer). Its goal is to smoke test robustness and guard against
// panics, stuck cursors or broken stream invariants on arbitrary inputs.
//
// Назначение: запускать fuzz-обработчики, которые загружают байты в FileSet и
// прогоняют их через лексер и таблицу единиц.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
//
// Зависимости: internal/source, internal/lexer, internal/diag,
// internal/testkit, internal/unit.

package fuzztests
