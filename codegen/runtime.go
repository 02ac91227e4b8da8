package codegen

import (
	"text/template"
)

// prelude is the C runtime shared by every generated program.
var prelude = template.Must(template.New("prelude").Parse(`/* Generated by ybf{{if .Name}} from {{.Name}}{{end}}. Do not edit. */
#include <stdio.h>
#include <stdlib.h>

#define TAPE_SIZE {{.TapeSize}}

static unsigned char tape[TAPE_SIZE];
static long long pos = 0;

static const char *names[] = {
{{- range .Names}}
    "{{.}}",
{{- end}}
};
#define NAME_COUNT ((long long)(sizeof(names) / sizeof(names[0])))

static void fail(const char *message) {
    fflush(stdout);
    fprintf(stderr, "%s\n", message);
    exit(1);
}

static void move(long long delta) {
    long long next = pos + delta;
    if (next < 0) {
        fflush(stdout);
        fprintf(stderr, "buffer overrun: position %lld is negative\n", next);
        exit(1);
    }
    if (next >= TAPE_SIZE) {
        fflush(stdout);
        fprintf(stderr, "buffer overrun: position %lld exceeds %d\n", next, TAPE_SIZE - 1);
        exit(1);
    }
    pos = next;
}

static void move_to(long long address) {
    move(address - pos);
}

static void output(long long times) {
    unsigned char c = tape[pos];
    for (; times > 0; times--) {
{{- if .Raw}}
        putchar(c);
{{- else}}
        if (c < 0x80) {
            putchar(c);
        } else {
            putchar(0xc0 | (c >> 6));
            putchar(0x80 | (c & 0x3f));
        }
{{- end}}
    }
}

static void input(void) {
    int c;
    fflush(stdout);
    c = getchar();
    if (c == EOF) {
{{- if eq .Eof "zero"}}
        c = 0;
{{- else if eq .Eof "keep"}}
        return;
{{- else}}
        fail("{{.EofMessage}}");
{{- end}}
    }
    tape[pos] = (unsigned char)c;
}

static void dump_raw(void) {
    printf("%d\n", tape[pos]);
}

static void dump(void) {
    long long n;
    printf("---------- Current Memory Structure ----------\n");
    printf("Position: %lld (%s)\n", pos, pos < NAME_COUNT ? names[pos] : "unnamed");
    printf("   Value: %d\n", tape[pos]);
    printf("  Memory: {");
    for (n = 0; n < NAME_COUNT && n < TAPE_SIZE; n++) {
        if (tape[n]) {
            printf("'%s': %d, ", names[n], tape[n]);
        }
    }
    printf("}\n");
    printf("----------------------------------------------\n");
}

int main(void) {
`))

const postlude = `    return 0;
}
`

type preludeData struct {
	Name       string
	TapeSize   int
	Names      []string
	Raw        bool
	Eof        string
	EofMessage string
}
